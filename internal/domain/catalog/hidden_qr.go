package catalog

import "github.com/amirhossein-jamali/party-bank/internal/domain/entity"

// HiddenQRPrefix marks codes that belong to the hidden QR catalog
const HiddenQRPrefix = "HQR-"

var hiddenCodes = []entity.HiddenQR{
	{ID: "HQR-GOLD", MaxScans: 1, RewardType: entity.RewardCoins, RewardAmount: 10, Message: "You found the golden ticket!"},
	{ID: "HQR-COUCH", MaxScans: 5, RewardType: entity.RewardCoins, RewardAmount: 3, Message: "Coins under the cushions."},
	{ID: "HQR-PLANT", MaxScans: 4, RewardType: entity.RewardCoins, RewardAmount: 2, Message: "Someone buried treasure in the ficus."},
	{ID: "HQR-FRIDGE", MaxScans: 3, RewardType: entity.RewardCard, RewardCardID: "lucky_jackpot", Message: "The fridge was hiding a lucky card."},
	{ID: "HQR-BOOKSHELF", MaxScans: 2, RewardType: entity.RewardCard, RewardCardID: "dare_accent", Message: "A dusty book falls open on a dare."},
	{ID: "HQR-BATHROOM", MaxScans: 10, RewardType: entity.RewardTrap, RewardAmount: -2, Message: "It's a trap! Pay the toll."},
	{ID: "HQR-DOORMAT", MaxScans: 6, RewardType: entity.RewardTrap, RewardAmount: -1, Message: "Wipe your feet. That'll be one coin."},
}

// FindHiddenQR looks up a hidden QR entry by code
func FindHiddenQR(code string) (entity.HiddenQR, bool) {
	for _, entry := range hiddenCodes {
		if entry.ID == code {
			return entry, true
		}
	}
	return entity.HiddenQR{}, false
}
