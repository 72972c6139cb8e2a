package strategies

import (
	"fmt"
	"strings"

	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/dollarcostaverage"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/momentum"
	"github.com/Joseph-Carlucci/quant-platform/eventhandlers/strategies/random"
)

// GetSupportedStrategies returns a new instance of every bundled
// strategy
func GetSupportedStrategies() []Handler {
	return []Handler{
		&momentum.Strategy{},
		&dollarcostaverage.Strategy{},
		&random.Strategy{},
	}
}

// LoadStrategyByName returns the strategy registered under name with
// its defaults applied
func LoadStrategyByName(name string) (Handler, error) {
	for _, s := range GetSupportedStrategies() {
		if !strings.EqualFold(s.Name(), name) {
			continue
		}
		s.SetDefaults()
		return s, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrStrategyNotFound, name)
}
