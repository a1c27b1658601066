package guess

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/beeckusu/project-music-ear-training-sub000/chord"
	"github.com/beeckusu/project-music-ear-training-sub000/model"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"C", "C"},
		{"  C  ", "C"},
		{"C Major", "C"},
		{"c major", "C"},
		{"CM", "C"},
		{"Cm", "Cm"},
		{"a minor", "Am"},
		{"A-", "Am"},
		{"Bdim", "Bdim"},
		{"B°", "Bdim"},
		{"C+", "Caug"},
		{"Gsus", "Gsus4"},
		{"Gsus2", "Gsus2"},
		{"Db maj7", "C#maj7"},
		{"D♭maj7", "C#maj7"},
		{"CM7", "Cmaj7"},
		{"CMAJOR7", "Cmaj7"},
		{"Cmin7", "Cm7"},
		{"C-7", "Cm7"},
		{"Cdom7", "C7"},
		{"Cø7", "Cm7♭5"},
		{"Cm7b5", "Cm7♭5"},
		{"Co7", "Cdim7"},
		{"Bb9", "A#9"},
		{"Gb13", "F#13"},
		{"Cadd9", "Cadd9"},
		{"Cadd2", "Cadd9"},
		{"B#", "C"},
		{"Cb", "B"},
		{"E#m", "Fm"},
		{"Fb", "E"},
		{"C/E", "C/E"},
		{"g7/b", "G7/B"},
		{"Db/Bb", "C#/A#"},
		{"Cxyz", "Cxyz"}, // unknown suffixes pass through
		{"", ""},
		{"   ", ""},
		{"H", ""},
		{"123", ""},
	}
	for _, tc := range cases {
		name := fmt.Sprintf("%q", tc.input)
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"Db maj7", "C Major", "Gsus", "Cø7", "g7/b", "Cxyz", "", "H", "A-",
	}
	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func mustBuild(t *testing.T, root model.PitchClass, quality model.ChordQuality, octave, inversion int) model.Chord {
	t.Helper()
	c, err := chord.Build(root, quality, octave, inversion)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestValidateExactMatch(t *testing.T) {
	target := mustBuild(t, model.CSharp, model.Major7, 4, 0)
	res := Validate("C#maj7", target)

	assert := assert.New(t)
	assert.True(res.IsCorrect)
	assert.False(res.IsEnharmonic)
	assert.Equal("C#maj7", res.NormalizedGuess)
	assert.Equal("C#maj7", res.NormalizedAnswer)
	assert.Empty(res.Feedback)
}

func TestValidateAcceptsAliases(t *testing.T) {
	target := mustBuild(t, model.A, model.Minor7, 3, 0)
	for _, text := range []string{"Am7", "Amin7", "A-7", "a minor7"} {
		res := Validate(text, target)
		assert.True(t, res.IsCorrect, "guess %q", text)
		assert.False(t, res.IsEnharmonic)
	}
}

func TestValidateEnharmonicGuess(t *testing.T) {
	target := mustBuild(t, model.CSharp, model.Major7, 4, 0)
	res := Validate("Db maj7", target)

	assert := assert.New(t)
	assert.True(res.IsCorrect)
	assert.True(res.IsEnharmonic)
	assert.Equal("Db maj7", res.OriginalGuess)
	assert.Equal("C#maj7", res.NormalizedGuess)
}

func TestValidateSlashChordGuess(t *testing.T) {
	target := mustBuild(t, model.G, model.Dominant7, 3, 1)
	assert.Equal(t, "G7/B", target.DisplayName)

	res := Validate("g7/b", target)
	assert.True(t, res.IsCorrect)

	res = Validate("G7", target)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, "Incorrect. The correct answer is G7/B.", res.Feedback)
}

func TestValidateIncorrectGuess(t *testing.T) {
	target := mustBuild(t, model.C, model.Major, 4, 0)
	res := Validate("Dm", target)

	assert := assert.New(t)
	assert.False(res.IsCorrect)
	assert.False(res.IsEnharmonic)
	assert.Equal("Incorrect. The correct answer is C.", res.Feedback)
}

func TestValidateEmptyGuess(t *testing.T) {
	target := mustBuild(t, model.C, model.Major, 4, 0)
	res := Validate("", target)

	assert := assert.New(t)
	assert.False(res.IsCorrect)
	assert.Equal("", res.NormalizedGuess)
	assert.Equal("Incorrect. The correct answer is C.", res.Feedback)
}

func TestValidateFlatRootOfSharplessAnswerIsNotEnharmonic(t *testing.T) {
	// the answer contains no sharp, so a correct flat-free guess never
	// raises the enharmonic flag
	target := mustBuild(t, model.F, model.Major, 4, 0)
	res := Validate("F", target)
	assert.True(t, res.IsCorrect)
	assert.False(t, res.IsEnharmonic)
}
