package templates

// JavaFile is the data of a generated Java class.
type JavaFile struct {
	// Source is the bundle path relative to the bundle root.
	Source string
	// Package is empty for the default package.
	Package   string
	ClassName string
	// BundleName is the quoted resource bundle base name.
	BundleName string
	Strings    []JavaString
}

// JavaString is one bundle key of a Java class. Literal is a quoted Java
// string literal, DocKey and DocValue are escaped for Javadoc.
type JavaString struct {
	Constant string
	Literal  string
	DocKey   string
	DocValue string
}

// GoFile is the data of a generated Go file.
type GoFile struct {
	Source     string
	Package    string
	VarName    string
	BundleName string
	Fields     []GoField
}

// GoField is one bundle key of a Go file. Doc is a single line.
type GoField struct {
	Name string
	Key  string
	Doc  string
}
