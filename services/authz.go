package services

import (
	"github.com/Ashish12122003/Menumate-backend/entity"
)

// ActorKind is the closed set of identities the policy reasons about.
type ActorKind int

const (
	ActorAdmin ActorKind = iota
	ActorFoodCourtManager
	ActorShopOwner
)

type Actor struct {
	Kind     ActorKind
	VendorID uint
	// food court the actor manages; zero unless Kind is ActorFoodCourtManager
	FoodCourtID uint
}

func ActorFromVendor(v *entity.Vendor) Actor {
	switch v.Role {
	case entity.RoleAdmin:
		return Actor{Kind: ActorAdmin, VendorID: v.ID}
	case entity.RoleManager:
		a := Actor{Kind: ActorFoodCourtManager, VendorID: v.ID}
		if v.ManagesFoodCourtID != nil {
			a.FoodCourtID = *v.ManagesFoodCourtID
		}
		return a
	default:
		return Actor{Kind: ActorShopOwner, VendorID: v.ID}
	}
}

type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether the actor may manage the shop's sub-resources
// (tables, menu, orders). Precedence, first match wins:
//
//  1. admin — always allowed
//  2. shop in a food court — only that food court's manager
//  3. standalone shop — only its owner
//
// Existence of the shop is the caller's problem; the policy itself is pure.
func Authorize(actor Actor, shop *entity.Shop) Decision {
	if actor.Kind == ActorAdmin {
		return Decision{Allowed: true}
	}

	if shop.FoodCourtID != nil {
		if actor.Kind == ActorFoodCourtManager && actor.FoodCourtID == *shop.FoodCourtID {
			return Decision{Allowed: true}
		}
		return Decision{Reason: "Only the admin or the food court's manager can manage this shop."}
	}

	if actor.VendorID == shop.OwnerID {
		return Decision{Allowed: true}
	}
	return Decision{Reason: "You do not have permission to manage this shop."}
}
