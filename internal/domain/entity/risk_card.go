package entity

// CardType groups risk cards by the kind of consequence they carry
type CardType string

// Risk card types
const (
	CardLucky     CardType = "lucky"
	CardDrink     CardType = "drink"
	CardDare      CardType = "dare"
	CardDrinkDare CardType = "drink_dare"
	CardSocial    CardType = "social"
	CardUnlucky   CardType = "unlucky"
	CardSpecial   CardType = "special"
)

// RiskCard is an immutable entry of the risk-card deck.
// Probability is a relative weight; weights need not sum to 1.
type RiskCard struct {
	ID             string
	Type           CardType
	Effect         string
	Text           string
	CoinChange     int64
	Probability    float64
	Task           string
	Special        string
	CanDrinkCancel bool
}

// Weight returns the draw weight of the card
func (c RiskCard) Weight() float64 {
	return c.Probability
}
