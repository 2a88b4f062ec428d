package gen1save

// Badge identifies one of the eight gym badges
type Badge int

const (
	BadgeBoulder Badge = iota
	BadgeCascade
	BadgeThunder
	BadgeRainbow
	BadgeSoul
	BadgeMarsh
	BadgeVolcano
	BadgeEarth
	numBadges
)

var badgeNames = [numBadges]string{
	"Boulder (Brock)",
	"Cascade (Misty)",
	"Thunder (Lt. Surge)",
	"Rainbow (Erika)",
	"Soul (Koga)",
	"Marsh (Sabrina)",
	"Volcano (Blaine)",
	"Earth (Giovanni)",
}

func (b Badge) String() string {
	if b < 0 || b >= numBadges {
		return "Unknown"
	}
	return badgeNames[b]
}

// Badges is the badge bitfield, bit n is set if badge n has been earned
type Badges uint8

// Has reports whether badge has been earned
func (b Badges) Has(badge Badge) bool {
	if badge < 0 || badge >= numBadges {
		return false
	}
	return b&(1<<uint(badge)) != 0
}

// List returns the earned badges in gym order
func (b Badges) List() []Badge {
	var l []Badge
	for badge := BadgeBoulder; badge < numBadges; badge++ {
		if b.Has(badge) {
			l = append(l, badge)
		}
	}
	return l
}

// AllBadges returns every badge in gym order
func AllBadges() []Badge {
	l := make([]Badge, numBadges)
	for i := range l {
		l[i] = Badge(i)
	}
	return l
}
