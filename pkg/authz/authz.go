// Package authz is the permission gate used by every handler. Decisions are
// keyed on (action, object type, object id) for the acting principal and
// always resolve to a plain boolean: missing objects and store failures deny
// instead of erroring.
package authz

import (
	"context"

	"github.com/meloniq-lab/glotline/dao/model"
	"github.com/meloniq-lab/glotline/pkg/logutils"
	"github.com/meloniq-lab/glotline/pkg/store"
)

type Action string

const (
	ActionWrite   Action = "write"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionEdit    Action = "edit"
)

type ObjectType string

const (
	ObjectProject        ObjectType = "project"
	ObjectTranslationSet ObjectType = "translation-set"
	ObjectTranslation    ObjectType = "translation"
)

// Principal is the authenticated identity a decision is made for.
type Principal struct {
	UserID uint
	Role   model.Role
}

type Gate interface {
	Can(ctx context.Context, p Principal, action Action, objectType ObjectType, objectID uint) bool
}

// StoreGate decides from the permission rows in the store. Platform admins
// pass every check; other users only hold the approve grants recorded as
// validator permissions.
type StoreGate struct {
	sets        store.TranslationSetStore
	permissions store.PermissionStore
}

func NewStoreGate(sets store.TranslationSetStore, permissions store.PermissionStore) *StoreGate {
	return &StoreGate{sets: sets, permissions: permissions}
}

func (g *StoreGate) Can(ctx context.Context, p Principal, action Action, objectType ObjectType, objectID uint) bool {
	if p.UserID == 0 {
		return false
	}
	if p.Role == model.RoleAdmin {
		return true
	}

	if action != ActionApprove {
		return false
	}

	switch objectType {
	case ObjectTranslationSet:
		set, err := g.sets.Get(ctx, objectID)
		if err != nil || set == nil {
			return false
		}
		grant, err := g.permissions.Find(ctx, p.UserID, set.ProjectID, set.Locale, set.Slug)
		if err != nil {
			logutils.Log.WithError(err).Debug("permission lookup failed")
			return false
		}
		return grant != nil
	case ObjectProject:
		grants, err := g.permissions.ByUser(ctx, p.UserID)
		if err != nil {
			logutils.Log.WithError(err).Debug("permission lookup failed")
			return false
		}
		for _, grant := range grants {
			if grant.ProjectID == objectID {
				return true
			}
		}
		return false
	default:
		return false
	}
}
