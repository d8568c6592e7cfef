package domain

// Roles carried in tokens minted by the external identity provider.
const (
	RoleAdmin      = "admin"
	RoleStoreOwner = "store_owner"
)
