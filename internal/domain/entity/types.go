package entity

// Kind tags every entity with the behavior variant that drives it.
type Kind int

const (
	KindCharacter Kind = iota
	KindChicken
	KindChick
	KindEndboss
	KindCoin
	KindBottle
	KindCloud
	KindBackground
	KindProjectile
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindCharacter:
		return "Character"
	case KindChicken:
		return "Chicken"
	case KindChick:
		return "Chick"
	case KindEndboss:
		return "Endboss"
	case KindCoin:
		return "Coin"
	case KindBottle:
		return "Bottle"
	case KindCloud:
		return "Cloud"
	case KindBackground:
		return "Background"
	case KindProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}

// ParseKind maps a level content name ("chicken", "endboss", ...) to its kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "character":
		return KindCharacter, true
	case "chicken":
		return KindChicken, true
	case "chick":
		return KindChick, true
	case "endboss":
		return KindEndboss, true
	case "coin":
		return KindCoin, true
	case "bottle":
		return KindBottle, true
	case "cloud":
		return KindCloud, true
	case "background":
		return KindBackground, true
	case "projectile":
		return KindProjectile, true
	}
	return 0, false
}

// IsEnemy reports whether the kind fights the character.
func (k Kind) IsEnemy() bool {
	return k == KindChicken || k == KindChick || k == KindEndboss
}

// IsCollectible reports whether the kind is picked up on contact.
func (k Kind) IsCollectible() bool {
	return k == KindCoin || k == KindBottle
}
