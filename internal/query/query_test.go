package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-go/internal/filter"
	"file-go/internal/pathinfo"
)

func TestCompile_FullQuery(t *testing.T) {
	f := Compile("ext:txt age>2d size<10MB")

	assert.Equal(t, []string{"txt"}, f.Exts)
	require.NotNil(t, f.MinAgeSecs)
	assert.Equal(t, uint64(172800), *f.MinAgeSecs)
	require.NotNil(t, f.MaxSize)
	assert.Equal(t, uint64(10485760), *f.MaxSize)
	assert.Nil(t, f.MaxAgeSecs)
	assert.Nil(t, f.MinSize)

	threeDays := &pathinfo.Info{
		Name: "old.txt", Ext: "txt", IsFile: true,
		Size: filter.Uint64(1024), AgeSecs: filter.Uint64(3 * 86400),
	}
	oneDay := &pathinfo.Info{
		Name: "new.txt", Ext: "txt", IsFile: true,
		Size: filter.Uint64(1024), AgeSecs: filter.Uint64(86400),
	}
	assert.True(t, f.Matches(threeDays))
	assert.False(t, f.Matches(oneDay))
}

func TestCompile_KeyValueForms(t *testing.T) {
	tests := []struct {
		query string
		want  filter.Filter
	}{
		{"contains:report", filter.Filter{Contains: []string{"report"}}},
		{"name=report", filter.Filter{Contains: []string{"report"}}},
		{"prefix:2024_", filter.Filter{Prefix: []string{"2024_"}}},
		{"suffix=.bak", filter.Filter{Suffix: []string{".bak"}}},
		{"ext:.JPG", filter.Filter{Exts: []string{"jpg"}}},
		{"ext=png ext:gif", filter.Filter{Exts: []string{"png", "gif"}}},
		{"type:file", filter.Filter{OnlyFiles: true}},
		{"type=dir", filter.Filter{OnlyDirs: true}},
		{"type:symlink", filter.Filter{}},
		{"name:a:b", filter.Filter{Contains: []string{"a:b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Compile(tt.query))
		})
	}
}

func TestCompile_Hidden(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "on"} {
		assert.True(t, Compile("hidden:"+v).IncludeHidden, v)
	}
	for _, v := range []string{"0", "false", "TRUE", "Yes", ""} {
		assert.False(t, Compile("hidden:"+v).IncludeHidden, v)
	}
	assert.False(t, Compile("hidden:true hidden:no").IncludeHidden, "last token wins")
}

func TestCompile_Comparisons(t *testing.T) {
	f := Compile("age<1.5w size>64k")
	require.NotNil(t, f.MaxAgeSecs)
	assert.Equal(t, uint64(907200), *f.MaxAgeSecs)
	require.NotNil(t, f.MinSize)
	assert.Equal(t, uint64(65536), *f.MinSize)
}

func TestCompile_MalformedTokensAreIgnored(t *testing.T) {
	f, ignored := CompileWithReport("bogus:1 justaword size>lots age<  ext: kind=file ext:md")

	assert.Equal(t, filter.Filter{Exts: []string{"md"}}, f)

	tokens := make([]string, 0, len(ignored))
	for _, ig := range ignored {
		tokens = append(tokens, ig.Token)
		assert.NotEmpty(t, ig.Reason)
	}
	assert.Equal(t, []string{"bogus:1", "justaword", "size>lots", "age<", "ext:", "kind=file"}, tokens)
}

func TestCompile_Empty(t *testing.T) {
	f, ignored := CompileWithReport("   \t\n ")
	assert.True(t, f.IsEmpty())
	assert.Empty(t, ignored)
}

func TestCompile_HiddenFileNotDirectory(t *testing.T) {
	f := Compile("hidden:true type:file")

	hiddenFile := &pathinfo.Info{Name: ".bashrc", Ext: "", IsFile: true, Size: filter.Uint64(10), Hidden: true}
	hiddenDir := &pathinfo.Info{Name: ".cache", IsDir: true, Hidden: true}

	assert.True(t, f.Matches(hiddenFile))
	assert.False(t, f.Matches(hiddenDir))
}

func TestIgnored_String(t *testing.T) {
	assert.Equal(t, `"x": unknown key "y"`, Ignored{Token: "x", Reason: `unknown key "y"`}.String())
}
