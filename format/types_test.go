package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Kcomp", CompressionKcomp.String())
	require.Equal(t, "Unknown", CompressionType(0x7F).String())
}

func TestModeString(t *testing.T) {
	require.Equal(t, "PPM5", ModePPM5.String())
	require.Equal(t, "BWT+MTF+PPM3", ModeBWTPPM3.String())
	require.Equal(t, "Word+Dict+PPM6", ModeWordDictPPM6.String())
	require.Equal(t, "StoreRaw", ModeStoreRaw.String())
	require.Equal(t, "Unknown", Mode(200).String())

	// Every catalog tag must have a name.
	for tag := Mode(0); tag <= ModeRLELZMAPPM6; tag++ {
		require.NotEqual(t, "Unknown", tag.String(), "tag %d", tag)
	}
}

func TestModeTagValues(t *testing.T) {
	// The tag values are the wire format; they must never drift.
	require.Equal(t, Mode(0), ModePPM5)
	require.Equal(t, Mode(12), ModeCM)
	require.Equal(t, Mode(19), ModePattern)
	require.Equal(t, Mode(34), ModeWordDictPPM6)
	require.Equal(t, Mode(50), ModeRLELZMAPPM6)
	require.Equal(t, Mode(255), ModeStoreRaw)
}
