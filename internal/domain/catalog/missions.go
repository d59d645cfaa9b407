package catalog

import "github.com/amirhossein-jamali/party-bank/internal/domain/entity"

var traits = []entity.Trait{
	{
		ID: "social_butterfly", Name: "Social Butterfly", Emoji: "🦋",
		Description: "Knows everyone by the end of the night.",
		Missions: []entity.MissionTemplate{
			{Title: "Name Game", Description: "Learn the names of five guests you just met", Reward: 3, Verification: entity.VerifyHonor},
			{Title: "Matchmaker", Description: "Introduce two guests who have never met", Reward: 4, Verification: entity.VerifyWitness, RequiresConfirmation: true},
			{Title: "Party Photo", Description: "Get a group photo with at least six people", Reward: 5, Verification: entity.VerifyWitness, RequiresConfirmation: true},
		},
	},
	{
		ID: "daredevil", Name: "Daredevil", Emoji: "🔥",
		Description: "Says yes before hearing the question.",
		Missions: []entity.MissionTemplate{
			{Title: "Hot Sauce", Description: "Eat a chip with the hottest sauce in the house", Reward: 4, Verification: entity.VerifyWitness, RequiresConfirmation: true},
			{Title: "Karaoke Hero", Description: "Sing a full song in front of the room", Reward: 5, Verification: entity.VerifyWitness, RequiresConfirmation: true},
			{Title: "Risk Taker", Description: "Draw three risk cards in a row", Reward: 3, Verification: entity.VerifyHonor},
		},
	},
	{
		ID: "mastermind", Name: "Mastermind", Emoji: "🧠",
		Description: "Always three moves ahead.",
		Missions: []entity.MissionTemplate{
			{Title: "Riddle Me", Description: "Stump someone with a riddle", Reward: 3, Verification: entity.VerifyTarget, RequiresConfirmation: true},
			{Title: "Strategist", Description: "Win a round of any table game", Reward: 4, Verification: entity.VerifyWitness, RequiresConfirmation: true},
		},
	},
	{
		ID: "secret_agent", Name: "Secret Agent", Emoji: "🕶️",
		Description: "Nobody saw them arrive.",
		Missions: []entity.MissionTemplate{
			{Title: "Undercover", Description: "Get someone to say 'pineapple' without asking them to", Reward: 4, Verification: entity.VerifyTarget, RequiresConfirmation: true},
			{Title: "Shadow", Description: "Find two hidden QR codes", Reward: 3, Verification: entity.VerifyHonor},
		},
	},
	{
		ID: "entertainer", Name: "Entertainer", Emoji: "🎭",
		Description: "The party starts when they walk in.",
		Missions: []entity.MissionTemplate{
			{Title: "Storyteller", Description: "Tell a story that makes someone laugh out loud", Reward: 3, Verification: entity.VerifyTarget, RequiresConfirmation: true},
			{Title: "Impressionist", Description: "Do an impression the room recognizes", Reward: 4, Verification: entity.VerifyWitness, RequiresConfirmation: true},
		},
	},
}

func cloneTrait(trait entity.Trait) entity.Trait {
	trait.Missions = append([]entity.MissionTemplate(nil), trait.Missions...)
	return trait
}

// Traits returns every trait in declaration order
func Traits() []entity.Trait {
	out := make([]entity.Trait, len(traits))
	for i, trait := range traits {
		out[i] = cloneTrait(trait)
	}
	return out
}

// FindTrait looks up a trait by id
func FindTrait(id string) (entity.Trait, bool) {
	for _, trait := range traits {
		if trait.ID == id {
			return cloneTrait(trait), true
		}
	}
	return entity.Trait{}, false
}

// MissionsForTrait returns the ordered missions of a trait
func MissionsForTrait(id string) ([]entity.MissionTemplate, bool) {
	trait, ok := FindTrait(id)
	if !ok {
		return nil, false
	}
	return trait.Missions, true
}

// FindMission returns the mission at index for a trait
func FindMission(traitID string, index int) (entity.MissionTemplate, bool) {
	trait, ok := FindTrait(traitID)
	if !ok || index < 0 || index >= len(trait.Missions) {
		return entity.MissionTemplate{}, false
	}
	return trait.Missions[index], true
}
