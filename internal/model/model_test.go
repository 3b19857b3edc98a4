package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crud_api/internal/domain"
)

func TestOptionalUnmarshal(t *testing.T) {
	t.Run("absent key stays unset", func(t *testing.T) {
		var p CategoryPatch
		require.NoError(t, json.Unmarshal([]byte(`{"name":"Books"}`), &p))
		require.True(t, p.Name.Set)
		require.Equal(t, "Books", p.Name.Value)
		require.False(t, p.Slug.Set)
		require.False(t, p.ParentID.Set)
	})

	t.Run("explicit null is set", func(t *testing.T) {
		var p CategoryPatch
		require.NoError(t, json.Unmarshal([]byte(`{"parentId":null}`), &p))
		require.True(t, p.ParentID.Set)
		require.Nil(t, p.ParentID.Value)
	})

	t.Run("type mismatch fails", func(t *testing.T) {
		var p ProductPatch
		require.Error(t, json.Unmarshal([]byte(`{"price":"cheap"}`), &p))
	})
}

func TestOptionalMarshalOmitsUnset(t *testing.T) {
	payload, err := json.Marshal(UserPatch{Name: Some("Ada")})
	require.NoError(t, err)
	require.JSONEq(t, `{"name":"Ada"}`, string(payload))
}

func TestPatchApply(t *testing.T) {
	parent := "root"
	category := Category{Name: "Books", ParentID: &parent, Slug: "books"}

	var p CategoryPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Novels","parentId":null}`), &p))
	p.Apply(&category)

	require.Equal(t, "Novels", category.Name)
	require.Nil(t, category.ParentID)
	require.Equal(t, "books", category.Slug)
}

func TestPatchReplacesCollectionsWholesale(t *testing.T) {
	order := Order{ProductIDs: []string{"a", "b"}, Status: domain.OrderStatusPending}
	(&OrderPatch{ProductIDs: Some([]string{"c"})}).Apply(&order)
	require.Equal(t, []string{"c"}, order.ProductIDs)
	require.Equal(t, domain.OrderStatusPending, order.Status)

	entry := Log{Metadata: map[string]any{"a": 1.0}}
	(&LogPatch{Metadata: Some(map[string]any{"b": true})}).Apply(&entry)
	require.Equal(t, map[string]any{"b": true}, entry.Metadata)
}

func TestValidate(t *testing.T) {
	require.NoError(t, (&User{}).Validate())
	require.ErrorIs(t, (&User{Role: "root"}).Validate(), domain.ErrInvalidValue)
	require.ErrorIs(t, (&OrderPatch{Status: Some("lost")}).Validate(), domain.ErrInvalidValue)
	require.NoError(t, (&SettingsPatch{Theme: Some(domain.ThemeDark)}).Validate())
	require.ErrorIs(t, (&Log{Level: "fatal"}).Validate(), domain.ErrInvalidValue)
}

func TestBaseInitAndTouch(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	var b Base
	b.Init(now)
	require.NotEmpty(t, b.ID)
	require.Equal(t, now, b.CreatedAt)
	require.Equal(t, b.CreatedAt, b.UpdatedAt)

	var next Base
	next.Touch(b, now.Add(time.Minute))
	require.Equal(t, b.ID, next.ID)
	require.Equal(t, b.CreatedAt, next.CreatedAt)
	require.Equal(t, now.Add(time.Minute), next.UpdatedAt)

	var skewed Base
	skewed.Touch(next, now.Add(-time.Hour))
	require.Equal(t, next.UpdatedAt, skewed.UpdatedAt)
}

func TestNotFoundMessage(t *testing.T) {
	require.Equal(t, "Category not found", CategoryResource.NotFoundMessage())
	require.Len(t, Resources, 10)
}
