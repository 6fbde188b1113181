package transcript_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/takakv/confidential-core/group"
	"github.com/takakv/confidential-core/transcript"
)

func TestChallengeIsDeterministic(t *testing.T) {
	mk := func() group.Scalar {
		tr := transcript.New("test")
		tr.AppendUint64("n", 64)
		_ = tr.AppendPoint("commitment", group.Ristretto255.Generator())
		return tr.ChallengeScalar("challenge")
	}
	a := mk()
	b := mk()
	require.True(t, a.IsEqual(b))
}

func TestChallengeDependsOnEveryAbsorbedValue(t *testing.T) {
	base := func(commit group.Element) group.Scalar {
		tr := transcript.New("test")
		_ = tr.AppendPoint("commitment", commit)
		return tr.ChallengeScalar("challenge")
	}
	a := base(group.Ristretto255.Generator())
	b := base(group.Ristretto255.Random())
	require.False(t, a.IsEqual(b))
}

func TestChallengeDependsOnLabel(t *testing.T) {
	tr1 := transcript.New("test")
	tr2 := transcript.New("test")
	a := tr1.ChallengeScalar("x")
	b := tr2.ChallengeScalar("y")
	require.False(t, a.IsEqual(b))
}

func TestDistinctDomainsDiverge(t *testing.T) {
	tr1 := transcript.New("range-proof")
	tr2 := transcript.New("equality-proof")
	a := tr1.ChallengeScalar("challenge")
	b := tr2.ChallengeScalar("challenge")
	require.False(t, a.IsEqual(b))
}

func TestChallengeScalarsAreDistinct(t *testing.T) {
	tr := transcript.New("test")
	scalars := tr.ChallengeScalars("batch", 4)
	require.Len(t, scalars, 4)
	for i := range scalars {
		for j := range scalars {
			if i == j {
				continue
			}
			require.False(t, scalars[i].IsEqual(scalars[j]))
		}
	}
}

func TestCloneDoesNotAffectOriginal(t *testing.T) {
	tr := transcript.New("test")
	clone := tr.Clone()
	clone.AppendUint64("extra", 1)

	a := tr.ChallengeScalar("challenge")
	b := transcript.New("test").ChallengeScalar("challenge")
	require.True(t, a.IsEqual(b), "original transcript must be unaffected by clone mutation")
}
