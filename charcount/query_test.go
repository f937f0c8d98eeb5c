package charcount

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Most(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		want Result
	}{
		{
			name: "hello world",
			r:    CountAll("Hello world!"),
			want: Result{{Char: 'l', Count: 3}},
		},
		{
			name: "all tied",
			r:    CountAll("cba"),
			want: Result{
				{Char: 'a', Count: 1},
				{Char: 'b', Count: 1},
				{Char: 'c', Count: 1},
			},
		},
		{
			name: "two at top",
			r:    CountAll("aabbc"),
			want: Result{
				{Char: 'a', Count: 2},
				{Char: 'b', Count: 2},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.Most()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResult_Least(t *testing.T) {
	tests := []struct {
		name string
		r    Result
		want Result
	}{
		{
			name: "hello world",
			r:    CountAll("Hello world!"),
			want: Result{
				{Char: ' ', Count: 1},
				{Char: '!', Count: 1},
				{Char: 'H', Count: 1},
				{Char: 'd', Count: 1},
				{Char: 'e', Count: 1},
				{Char: 'r', Count: 1},
				{Char: 'w', Count: 1},
			},
		},
		{
			name: "single",
			r:    CountAll("aaa"),
			want: Result{{Char: 'a', Count: 3}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.Least()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResult_MostLeast_Empty(t *testing.T) {
	for _, r := range []Result{nil, {}, CountAll(""), CountChinese("abc")} {
		most, err := r.Most()
		assert.True(t, errors.Is(err, ErrEmpty))
		assert.Nil(t, most)

		least, err := r.Least()
		assert.True(t, errors.Is(err, ErrEmpty))
		assert.Nil(t, least)
	}
}

func TestResult_FindByCount(t *testing.T) {
	r := CountAll("Hello world!")

	assert.Equal(t, Result{{Char: 'o', Count: 2}}, r.FindByCount(2))
	assert.Equal(t, Result{{Char: 'l', Count: 3}}, r.FindByCount(3))
	assert.Len(t, r.FindByCount(1), 7)
	assert.Equal(t, Result{}, r.FindByCount(4))
	assert.Equal(t, Result{}, r.FindByCount(0))
	assert.Equal(t, Result{}, Result(nil).FindByCount(1))
}

func TestResult_FindByChar(t *testing.T) {
	r := CountAll("Hello world!")

	got, ok := r.FindByChar('H')
	assert.True(t, ok)
	assert.Equal(t, CharCount{Char: 'H', Count: 1}, got)

	got, ok = r.FindByChar('l')
	assert.True(t, ok)
	assert.Equal(t, CharCount{Char: 'l', Count: 3}, got)

	got, ok = r.FindByChar('z')
	assert.False(t, ok)
	assert.Equal(t, CharCount{}, got)

	_, ok = Result(nil).FindByChar('a')
	assert.False(t, ok)
}

func TestResult_Chained(t *testing.T) {
	r := CountAll("Hello world!")

	least, err := r.Least()
	require.NoError(t, err)

	got, ok := least.FindByChar('H')
	assert.True(t, ok)
	assert.Equal(t, CharCount{Char: 'H', Count: 1}, got)

	_, ok = least.FindByChar('l')
	assert.False(t, ok)

	most, err := least.Most()
	require.NoError(t, err)
	assert.Equal(t, least, most)

	again, err := r.FindByCount(2).Least()
	require.NoError(t, err)
	assert.Equal(t, Result{{Char: 'o', Count: 2}}, again)
}

func TestResult_QueriesDoNotMutate(t *testing.T) {
	r := CountAll("Hello world!")
	orig := append(Result(nil), r...)

	most, err := r.Most()
	require.NoError(t, err)
	most[0].Count = 100

	top := r.TopK(2)
	top[0].Char = 'x'

	bottom := r.BottomK(2)
	bottom[0].Char = 'x'

	found := r.FindByCount(1)
	found[0].Count = 5

	assert.Equal(t, orig, r)
}

func TestResult_Filter(t *testing.T) {
	r := CountAll("Hello world!")

	assert.Equal(t,
		Result{{Char: 'l', Count: 3}, {Char: 'o', Count: 2}},
		r.Filter(func(c CharCount) bool { return c.Count > 1 }),
	)
	assert.Equal(t, Result{}, r.Filter(func(CharCount) bool { return false }))
}

func TestResult_Total(t *testing.T) {
	assert.Equal(t, 12, CountAll("Hello world!").Total())
	assert.Equal(t, 11, CountNoWhitespace("Hello world!").Total())
	assert.Equal(t, 0, Result(nil).Total())
}

func TestResult_TopKBottomK(t *testing.T) {
	r := CountAll("Hello world!")

	tests := []struct {
		name   string
		k      int
		top    Result
		bottom Result
	}{
		{
			name:   "zero",
			k:      0,
			top:    Result{},
			bottom: Result{},
		},
		{
			name:   "negative",
			k:      -1,
			top:    Result{},
			bottom: Result{},
		},
		{
			name: "two",
			k:    2,
			top: Result{
				{Char: 'l', Count: 3},
				{Char: 'o', Count: 2},
			},
			bottom: Result{
				{Char: 'r', Count: 1},
				{Char: 'w', Count: 1},
			},
		},
		{
			name:   "too many",
			k:      100,
			top:    r,
			bottom: r,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.top, r.TopK(tt.k))
			assert.Equal(t, tt.bottom, r.BottomK(tt.k))
		})
	}
}
