package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToSnake(t *testing.T) {
	assert.Equal(t, "max_move_speed", CamelToSnake("MaxMoveSpeed"))
	assert.Equal(t, "stamina", CamelToSnake("Stamina"))
	assert.Equal(t, "already_snake", CamelToSnake("already_snake"))
}

func TestStripPrefix(t *testing.T) {
	assert.Equal(t, "ability_dash", StripPrefix("citadel_ability_dash", "citadel_"))
	assert.Equal(t, "hero_astro", StripPrefix("hero_astro", "citadel_"))
	assert.Equal(t, "suffix", StripPrefix("junk/citadel_suffix", "citadel_"))
}
