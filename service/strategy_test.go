package service

import (
	"Pulse/types"
	"testing"
)

func TestStrategyFor(t *testing.T) {
	if got := StrategyFor(types.TargetPost); got != StrategyComputed {
		t.Fatalf("post strategy = %v, want StrategyComputed", got)
	}
	if got := StrategyFor(types.TargetActivity); got != StrategyRedundant {
		t.Fatalf("activity strategy = %v, want StrategyRedundant", got)
	}
}
