package utils_test

import (
	"testing"

	"converse-store/utils"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$349", utils.FormatPrice(349))
	assert.Equal(t, "$1,499", utils.FormatPrice(1499))
	assert.Equal(t, "$2,998", utils.FormatPrice(2998))
	assert.Equal(t, "$0", utils.FormatPrice(0))
}
