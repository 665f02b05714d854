package parabel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHyperParamValidateDefaults(t *testing.T) {
	require.NoError(t, DefaultHyperParam().Validate())
}

func TestHyperParamValidateRejectsEachBound(t *testing.T) {
	base := DefaultHyperParam()

	hp := base
	hp.NTrees = 0
	require.ErrorIs(t, hp.Validate(), ErrInvalidNTrees)

	hp = base
	hp.MinBranchSize = 1
	require.ErrorIs(t, hp.Validate(), ErrInvalidMinBranchSize)

	hp = base
	hp.MaxDepth = 0
	require.ErrorIs(t, hp.Validate(), ErrInvalidMaxDepth)

	hp = base
	hp.CentroidThreshold = -1
	require.ErrorIs(t, hp.Validate(), ErrInvalidCentroidThreshold)

	hp = base
	hp.Linear.C = 0
	require.Error(t, hp.Validate())

	hp = base
	hp.Cluster.Epsilon = 0
	require.Error(t, hp.Validate())
}
