package usecase

import (
	"context"
	"sync"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/logging"
)

// PermissionCallback provides allow/deny functions for the permission request.
type PermissionCallback struct {
	Allow func()
	Deny  func()
}

// PermissionPolicy maps permission kinds to decisions.
type PermissionPolicy struct {
	Default   entity.PermissionDecision
	Overrides map[entity.PermissionType]entity.PermissionDecision
}

// HandlePermissionUseCase answers permission requests from pages using a static policy.
type HandlePermissionUseCase struct {
	mu     sync.RWMutex
	policy PermissionPolicy
}

// NewHandlePermissionUseCase creates a permission use case.
// An empty default decision grants, matching what the shell always did.
func NewHandlePermissionUseCase(policy PermissionPolicy) *HandlePermissionUseCase {
	uc := &HandlePermissionUseCase{}
	uc.SetPolicy(policy)
	return uc
}

// SetPolicy replaces the policy, typically after a config reload.
func (uc *HandlePermissionUseCase) SetPolicy(policy PermissionPolicy) {
	if policy.Default == "" {
		policy.Default = entity.PermissionGrant
	}
	overrides := make(map[entity.PermissionType]entity.PermissionDecision, len(policy.Overrides))
	for k, v := range policy.Overrides {
		overrides[k] = v
	}
	policy.Overrides = overrides

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.policy = policy
}

// Decide returns the decision for kind requested by origin.
func (uc *HandlePermissionUseCase) Decide(ctx context.Context, origin string, kind entity.PermissionType) entity.PermissionDecision {
	uc.mu.RLock()
	decision, ok := uc.policy.Overrides[kind]
	if !ok {
		decision = uc.policy.Default
	}
	uc.mu.RUnlock()

	logging.FromContext(ctx).Debug().
		Str("component", "permission").
		Str("origin", origin).
		Str("type", string(kind)).
		Str("decision", string(decision)).
		Msg("permission decided")
	return decision
}

// Handle decides and invokes exactly one of the callbacks.
func (uc *HandlePermissionUseCase) Handle(ctx context.Context, origin string, kind entity.PermissionType, cb PermissionCallback) {
	if uc.Decide(ctx, origin, kind) == entity.PermissionGrant {
		if cb.Allow != nil {
			cb.Allow()
		}
		return
	}
	if cb.Deny != nil {
		cb.Deny()
	}
}
