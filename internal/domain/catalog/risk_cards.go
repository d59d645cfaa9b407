package catalog

import "github.com/amirhossein-jamali/party-bank/internal/domain/entity"

// riskDeck is the risk station deck. Order matters only for the draw fallback.
var riskDeck = []entity.RiskCard{
	{ID: "lucky_jackpot", Type: entity.CardLucky, Effect: "gain", Text: "Jackpot! The bank pays out.", CoinChange: 5, Probability: 0.05},
	{ID: "lucky_tip", Type: entity.CardLucky, Effect: "gain", Text: "A stranger slips you a tip.", CoinChange: 2, Probability: 0.10},
	{ID: "drink_sip", Type: entity.CardDrink, Effect: "drink", Text: "Take a sip.", Probability: 0.15},
	{ID: "drink_double", Type: entity.CardDrink, Effect: "drink", Text: "Two sips, no excuses.", Probability: 0.10},
	{ID: "dare_dance", Type: entity.CardDare, Effect: "task", Text: "Show us your moves.", CoinChange: 2, Probability: 0.08,
		Task: "Dance to the next song for thirty seconds"},
	{ID: "dare_accent", Type: entity.CardDare, Effect: "task", Text: "Pick an accent and keep it.", CoinChange: 1, Probability: 0.08,
		Task: "Speak in an accent until your next turn"},
	{ID: "drink_dare_toast", Type: entity.CardDrinkDare, Effect: "task", Text: "Raise a toast or lose a coin.", CoinChange: -1, Probability: 0.07,
		Task: "Give a toast to the host", CanDrinkCancel: true},
	{ID: "social_compliment", Type: entity.CardSocial, Effect: "task", Text: "Make someone's night.", CoinChange: 1, Probability: 0.08,
		Task: "Compliment the person on your left"},
	{ID: "social_swap", Type: entity.CardSocial, Effect: "swap", Text: "Swap seats with anyone you like.", Probability: 0.06},
	{ID: "unlucky_tax", Type: entity.CardUnlucky, Effect: "loss", Text: "The bank collects its party tax.", CoinChange: -2, Probability: 0.08},
	{ID: "unlucky_pickpocket", Type: entity.CardUnlucky, Effect: "loss", Text: "Pickpocketed on the dance floor.", CoinChange: -3, Probability: 0.05},
	{ID: "special_double", Type: entity.CardSpecial, Effect: "special", Text: "Your next reward is doubled.", Probability: 0.04,
		Special: "double_next"},
	{ID: "special_shield", Type: entity.CardSpecial, Effect: "special", Text: "Block the next coin you would lose.", Probability: 0.03,
		Special: "shield"},
	{ID: "unlucky_crash", Type: entity.CardUnlucky, Effect: "loss", Text: "Market crash! Everyone panics.", CoinChange: -5, Probability: 0.03},
}

// RiskDeck returns a copy of the risk-card deck
func RiskDeck() []entity.RiskCard {
	return append([]entity.RiskCard(nil), riskDeck...)
}

// FindRiskCard looks up a risk card by id
func FindRiskCard(id string) (entity.RiskCard, bool) {
	for _, card := range riskDeck {
		if card.ID == id {
			return card, true
		}
	}
	return entity.RiskCard{}, false
}
