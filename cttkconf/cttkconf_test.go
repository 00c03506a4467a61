package cttkconf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pornin/cttk/ctprim"
)

func TestApplyDefaultsScratchBudget(t *testing.T) {
	Apply(Config{})
	require.Equal(t, DefaultScratchBudget, Current().ScratchBudget)
}

func TestApplyPushesNativeMulToCtprim(t *testing.T) {
	defer func() { ctprim.UseHardwareMul = false }()

	Apply(Config{NativeMulAllowed: true})
	require.True(t, ctprim.UseHardwareMul)

	Apply(Config{NativeMulAllowed: false})
	require.False(t, ctprim.UseHardwareMul)
}

func TestApplyCustomScratchBudget(t *testing.T) {
	Apply(Config{ScratchBudget: 1024})
	require.Equal(t, 1024, Current().ScratchBudget)
	Apply(Config{})
}
