// Package actor carries the already-authenticated caller identity into domain services.
package actor

import (
	"context"
	"fieldserve/shared/constant"
)

type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

// System is used for transitions the engine performs on its own, such as reschedule expiry.
var System = Actor{ID: constant.RoleSystem, Role: constant.RoleSystem}

// FromContext reads the identity the auth middleware stored on the request context.
func FromContext(ctx context.Context) Actor {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Actor{ID: id, Role: role}
}

// WithContext stores the identity on ctx.
func WithContext(ctx context.Context, a Actor) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, a.ID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, a.Role)
}

func (a Actor) IsZero() bool {
	return a.ID == ""
}
