package domain

// Sport is a closed enum of sports that a venue may offer
type Sport string

const (
	SportFootball  Sport = "Football"
	SportCricket   Sport = "Cricket"
	SportTennis    Sport = "Tennis"
	SportBadminton Sport = "Badminton"
)

// AllSports список всех поддерживаемых видов спорта
var AllSports = []Sport{SportFootball, SportCricket, SportTennis, SportBadminton}

// IsValid returns true if the sport is a member of the closed enum
func (s Sport) IsValid() bool {
	switch s {
	case SportFootball, SportCricket, SportTennis, SportBadminton:
		return true
	}
	return false
}

// SportOffered returns true if sport is a member of the venue's sports set
func SportOffered(sport Sport, offered []Sport) bool {
	for _, s := range offered {
		if s == sport {
			return true
		}
	}
	return false
}
