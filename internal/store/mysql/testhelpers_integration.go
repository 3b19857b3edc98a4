//go:build integration

package mysql

import (
	"context"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

func setupMySQLContainer(t require.TestingT, ctx context.Context) (string, func()) {
	const (
		dbName = "crud_api_test"
		user   = "testuser"
		pass   = "testpass"
	)

	container, err := mysql.RunContainer(
		ctx,
		mysql.WithDatabase(dbName),
		mysql.WithUsername(user),
		mysql.WithPassword(pass),
	)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, nat.Port("3306/tcp"))
	require.NoError(t, err)

	dsn := user + ":" + pass + "@tcp(" + host + ":" + port.Port() + ")/" + dbName + "?parseTime=true&loc=UTC"

	cleanup := func() {
		_ = container.Terminate(ctx)
	}
	return dsn, cleanup
}
