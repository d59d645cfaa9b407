package entity

// HuntStep is one code of a scavenger-hunt chain
type HuntStep struct {
	Code   string
	Clue   string
	Reward int64
}

// HuntChain is an ordered scavenger hunt
type HuntChain struct {
	ID    string
	Name  string
	Steps []HuntStep
}

// StepIndex returns the position of code in the chain, or -1
func (c HuntChain) StepIndex(code string) int {
	for i, step := range c.Steps {
		if step.Code == code {
			return i
		}
	}
	return -1
}
