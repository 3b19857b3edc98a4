package model

var (
	UserResource         = Resource{Name: "User", Path: "users"}
	ProductResource      = Resource{Name: "Product", Path: "products"}
	OrderResource        = Resource{Name: "Order", Path: "orders"}
	CommentResource      = Resource{Name: "Comment", Path: "comments"}
	TagResource          = Resource{Name: "Tag", Path: "tags"}
	CategoryResource     = Resource{Name: "Category", Path: "categories"}
	ReviewResource       = Resource{Name: "Review", Path: "reviews"}
	NotificationResource = Resource{Name: "Notification", Path: "notifications"}
	SettingsResource     = Resource{Name: "Settings", Path: "settings"}
	LogResource          = Resource{Name: "Log", Path: "logs"}
)

// Resources lists every resource in mount order.
var Resources = []Resource{
	UserResource,
	ProductResource,
	OrderResource,
	CommentResource,
	TagResource,
	CategoryResource,
	ReviewResource,
	NotificationResource,
	SettingsResource,
	LogResource,
}
