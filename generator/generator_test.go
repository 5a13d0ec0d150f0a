package generator

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/napalu/i18n-bundle-gen/errors"
	"github.com/napalu/i18n-bundle-gen/filetree"
	"github.com/napalu/i18n-bundle-gen/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainBundle = `# Main window strings
I18N_TITLE = Main window
I18N_GREETING = Hello {0}!
OTHER = not generated
`

func writeFixture(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func newProject(t *testing.T, files map[string]string) *settings.GenerateI18N {
	t.Helper()
	projectDir := t.TempDir()
	writeFixture(t, filepath.Join(projectDir, "src", "main", "resources"), files)
	s := settings.Default(projectDir)
	s.SetEnabled(true)
	return s
}

func TestRunDisabled(t *testing.T) {
	s := newProject(t, map[string]string{"de/carne/MainI18N.properties": mainBundle})
	s.SetEnabled(false)

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, result.Disabled)
	assert.Empty(t, result.Bundles)
	assert.NoDirExists(t, s.GenDir())
}

func TestRunJava(t *testing.T) {
	s := newProject(t, map[string]string{
		"de/carne/MainI18N.properties":    mainBundle,
		"de/carne/MainI18N_de.properties": "I18N_TITLE = Hauptfenster\n",
		"de/carne/Other.properties":       "I18N_IGNORED = not selected\n",
	})

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)

	output := filepath.Join(s.GenDir(), "de", "carne", "MainI18N.java")
	assert.Equal(t, BundleResult{
		Source: "de/carne/MainI18N.properties",
		Output: output,
		Keys:   2,
		Status: Written,
	}, result.Bundles[0])

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	source := string(data)
	assert.Contains(t, source, "// Code generated by i18n-bundle-gen from de/carne/MainI18N.properties. DO NOT EDIT.")
	assert.Contains(t, source, "package de.carne;")
	assert.Contains(t, source, "public final class MainI18N {")
	assert.Contains(t, source, `public static final String BUNDLE_NAME = "de.carne.MainI18N";`)
	assert.Contains(t, source, `public static final String I18N_TITLE = "I18N_TITLE";`)
	assert.Contains(t, source, "public static String formatI18N_GREETING(Object... arguments) {")
	assert.Contains(t, source, "return format(I18N_GREETING, arguments);")
	assert.Contains(t, source, "Default format: <code>Hello {0}!</code>")
	assert.NotContains(t, source, "OTHER")
}

func TestRunIgnoresSelectedLocaleVariants(t *testing.T) {
	s := newProject(t, map[string]string{
		"FooI18N.properties":    "I18N_A = a\nI18N_B = b\n",
		"FooI18N_de.properties": "I18N_A = A\n",
	})
	s.ConfigureBundles(func(tree *filetree.FileTree) {
		tree.Includes = []string{"**/*.properties"}
	})

	bundles, err := New(s).Bundles()
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "FooI18N.properties", bundles[0].RelPath)

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)
	assert.Equal(t, Written, result.Bundles[0].Status)
	assert.Equal(t, 2, result.Bundles[0].Keys)

	data, err := os.ReadFile(result.Bundles[0].Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `public static final String I18N_A = "I18N_A";`)
	assert.Contains(t, string(data), `public static final String I18N_B = "I18N_B";`)
}

func TestRunJavaSanitizedNames(t *testing.T) {
	s := newProject(t, map[string]string{"my-dir/App-I18N.properties": "I18N_A = a\n"})

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)

	output := filepath.Join(s.GenDir(), "my_dir", "App_I18N.java")
	assert.Equal(t, output, result.Bundles[0].Output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package my_dir;")
	assert.Contains(t, string(data), "public final class App_I18N {")
	assert.Contains(t, string(data), `public static final String BUNDLE_NAME = "my-dir.App-I18N";`)
}

func TestRunTwiceIsUnchanged(t *testing.T) {
	s := newProject(t, map[string]string{"MainI18N.properties": mainBundle})
	g := New(s)

	first, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Bundles, 1)
	assert.Equal(t, Written, first.Bundles[0].Status)

	second, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, second.Bundles, 1)
	assert.Equal(t, Unchanged, second.Bundles[0].Status)
	assert.Equal(t, 1, second.Count(Unchanged))
	assert.Equal(t, 0, second.Count(Written))

	data, err := os.ReadFile(second.Bundles[0].Output)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "package ")
}

func TestRunSkipsBundleWithoutKeys(t *testing.T) {
	s := newProject(t, map[string]string{"app/EmptyI18N.properties": "OTHER = x\n"})

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)
	assert.Equal(t, Skipped, result.Bundles[0].Status)
	assert.Empty(t, result.Bundles[0].Output)
	assert.Equal(t, 0, result.Bundles[0].Keys)
	assert.NoDirExists(t, s.GenDir())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name      string
		configure func(*settings.GenerateI18N)
		wantErr   error
	}{
		{
			name:      "nil key filter",
			configure: func(s *settings.GenerateI18N) { s.SetKeyFilter(nil) },
			wantErr:   errors.ErrInvalidKeyFilter,
		},
		{
			name:      "unknown target",
			configure: func(s *settings.GenerateI18N) { s.SetTarget("cobol") },
			wantErr:   errors.ErrUnknownTarget,
		},
		{
			name:      "invalid encoding",
			configure: func(s *settings.GenerateI18N) { s.SetEncoding("EBCDIC") },
			wantErr:   errors.ErrInvalidEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProject(t, map[string]string{"MainI18N.properties": mainBundle})
			tt.configure(s)

			result, err := New(s).Run(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestRunCanceled(t *testing.T) {
	s := newProject(t, map[string]string{"MainI18N.properties": mainBundle})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(s).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunCustomKeyFilter(t *testing.T) {
	s := newProject(t, map[string]string{"MainI18N.properties": mainBundle})
	s.SetKeyFilter(regexp.MustCompile("^OTHER$"))

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)
	assert.Equal(t, 1, result.Bundles[0].Keys)

	data, err := os.ReadFile(result.Bundles[0].Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `public static final String OTHER = "OTHER";`)
	assert.NotContains(t, string(data), "I18N_TITLE")
}

func TestRunGo(t *testing.T) {
	s := newProject(t, map[string]string{"de/carne/MainI18N.properties": mainBundle})
	s.SetTarget("go")

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)

	output := result.Bundles[0].Output
	assert.Equal(t, filepath.Join(s.GenDir(), "de", "carne"), filepath.Dir(output))
	assert.Equal(t, ".go", filepath.Ext(output))

	file, err := parser.ParseFile(token.NewFileSet(), output, nil, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "carne", file.Name.Name)

	want := map[string]string{
		"Bundle":       "de/carne/MainI18N",
		"I18NTitle":    "I18N_TITLE",
		"I18NGreeting": "I18N_GREETING",
	}
	if diff := cmp.Diff(want, bundleFields(t, file, "MainI18N")); diff != "" {
		t.Errorf("generated fields mismatch (-want +got):\n%s", diff)
	}
}

func TestRunGoFileName(t *testing.T) {
	s := newProject(t, map[string]string{"app/TextsI18N.properties": "I18N_A = a\n"})
	s.SetTarget("go")

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)
	assert.Equal(t, filepath.Join(s.GenDir(), "app", "textsi18n.go"), result.Bundles[0].Output)
}

func TestRunGoPackageOverride(t *testing.T) {
	s := newProject(t, map[string]string{"MainI18N.properties": mainBundle})
	s.SetTarget("go")
	s.SetGoPackage("texts")

	result, err := New(s).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Bundles, 1)

	file, err := parser.ParseFile(token.NewFileSet(), result.Bundles[0].Output, nil, parser.PackageClauseOnly)
	require.NoError(t, err)
	assert.Equal(t, "texts", file.Name.Name)
}

// bundleFields returns the keyed fields of the composite literal assigned to
// the package level variable name.
func bundleFields(t *testing.T, file *ast.File, name string) map[string]string {
	t.Helper()
	fields := make(map[string]string)
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			if vs.Names[0].Name != name {
				continue
			}
			lit := vs.Values[0].(*ast.CompositeLit)
			for _, elt := range lit.Elts {
				kv := elt.(*ast.KeyValueExpr)
				value, err := strconv.Unquote(kv.Value.(*ast.BasicLit).Value)
				require.NoError(t, err)
				fields[kv.Key.(*ast.Ident).Name] = value
			}
		}
	}
	return fields
}
