package users

import (
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/store"
)

// NewStore builds the seeded in-memory user store used on the fallback path.
func NewStore(latency time.Duration) *store.Store[User] {
	return store.New(store.Config[User]{
		Entity:     "user",
		Latency:    latency,
		ID:         func(u User) string { return u.ID },
		Clone:      cloneUser,
		NaturalKey: func(u User) string { return u.Email },
		Schema: query.Schema[User]{
			Search: []string{"name", "email"},
			Field:  userField,
		},
		Transitions: map[string]func(*User){
			"activate":   func(u *User) { u.IsActive = true },
			"deactivate": func(u *User) { u.IsActive = false },
			"verify":     func(u *User) { u.EmailVerified = true },
		},
	}, seedUsers())
}

func cloneUser(u User) User {
	out := u
	if u.LastLoginAt != nil {
		ts := *u.LastLoginAt
		out.LastLoginAt = &ts
	}
	return out
}

func userField(u User, name string) any {
	switch name {
	case "id":
		return u.ID
	case "email":
		return u.Email
	case "name":
		return u.Name
	case "role":
		return u.Role
	case "is_active":
		return u.IsActive
	case "email_verified":
		return u.EmailVerified
	case "last_login_at":
		if u.LastLoginAt == nil {
			return nil
		}
		return *u.LastLoginAt
	case "created_at":
		return u.CreatedAt
	case "updated_at":
		return u.UpdatedAt
	default:
		return nil
	}
}

func seedUsers() []User {
	base := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	login := base.AddDate(0, 2, 12)
	return []User{
		{ID: "usr-0001", Email: "ana.silva@meridian.test", Name: "Ana Silva", Role: RoleAdmin, IsActive: true, EmailVerified: true, LastLoginAt: &login, CreatedAt: base, UpdatedAt: base},
		{ID: "usr-0002", Email: "ben.okafor@meridian.test", Name: "Ben Okafor", Role: RoleManager, IsActive: true, EmailVerified: true, CreatedAt: base.AddDate(0, 0, 4), UpdatedAt: base.AddDate(0, 0, 4)},
		{ID: "usr-0003", Email: "carla.ruiz@meridian.test", Name: "Carla Ruiz", Role: RoleViewer, IsActive: true, EmailVerified: false, CreatedAt: base.AddDate(0, 0, 11), UpdatedAt: base.AddDate(0, 1, 0)},
		{ID: "usr-0004", Email: "dmitri.ivanov@meridian.test", Name: "Dmitri Ivanov", Role: RoleViewer, IsActive: false, EmailVerified: true, CreatedAt: base.AddDate(0, 1, 2), UpdatedAt: base.AddDate(0, 1, 2)},
		{ID: "usr-0005", Email: "emi.tanaka@meridian.test", Name: "Emi Tanaka", Role: RoleManager, IsActive: true, EmailVerified: true, CreatedAt: base.AddDate(0, 1, 20), UpdatedAt: base.AddDate(0, 2, 1)},
		{ID: "usr-0006", Email: "farah.khan@meridian.test", Name: "Farah Khan", Role: RoleViewer, IsActive: false, EmailVerified: false, CreatedAt: base.AddDate(0, 2, 5), UpdatedAt: base.AddDate(0, 2, 5)},
	}
}
