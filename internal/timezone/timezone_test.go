package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTimeIn(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)

	got, err := ParseDateTimeIn("2024-03-05", "09:30", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 9, 30, 0, 0, loc), got)
	assert.Equal(t, "2024-03-05", FormatDate(got))

	_, err = ParseDateTimeIn("2024-03-05", "9h30", loc)
	assert.Error(t, err)
}
