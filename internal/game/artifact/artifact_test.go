package artifact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jerbear1235/fheroes2/internal/game/artifact"
)

func TestBagHasBonus(t *testing.T) {
	bag := artifact.NewBag()
	assert.False(t, bag.HasBonus(artifact.NecromancySkill))

	bag.Add(artifact.Bonus{Type: artifact.NecromancySkill})
	assert.True(t, bag.HasBonus(artifact.NecromancySkill))
	assert.False(t, bag.HasBonus(artifact.BlessCostReduction))
}

func TestBagMultipliedPercentagesKeepsPickupOrder(t *testing.T) {
	bag := artifact.NewBag()
	bag.Add(artifact.Bonus{Type: artifact.SummoningCostReduction, Percent: 25})
	bag.Add(artifact.Bonus{Type: artifact.BlessCostReduction, Percent: 50})
	bag.Add(artifact.Bonus{Type: artifact.SummoningCostReduction, Percent: 10})

	assert.Equal(t, []int32{25, 10}, bag.MultipliedPercentages(artifact.SummoningCostReduction))
	assert.Equal(t, []int32{50}, bag.MultipliedPercentages(artifact.BlessCostReduction))
	assert.Empty(t, bag.MultipliedPercentages(artifact.CurseCostReduction))
}

func TestBagAddRejectsBadPercent(t *testing.T) {
	bag := artifact.NewBag()
	assert.Panics(t, func() { bag.Add(artifact.Bonus{Type: artifact.BlessCostReduction, Percent: -1}) })
	assert.Panics(t, func() { bag.Add(artifact.Bonus{Type: artifact.BlessCostReduction, Percent: 101}) })
}
