package ingest

// nodeKind maps an XML element's local name onto one of the recognised
// dispatch kinds. Anything absent from this table is unrecognised and the
// visitor degrades to descending into its children. Tag spellings follow the
// input contract literally: compound names are mashed lowercase, no
// underscores (confirmed by the two tags the contract names explicitly,
// "typetable" and "varref").
var nodeKind = map[string]string{
	"always":             "ALWAYS",
	"alwayspublic":       "ALWAYS_PUBLIC",
	"assign":             "ASSIGN",
	"assignalias":        "ASSIGN_ALIAS",
	"assigndly":          "ASSIGN_DLY",
	"assignw":            "ASSIGN_W",
	"basicdtype":         "BASIC_DTYPE",
	"contassign":         "CONT_ASSIGN",
	"cfunc":              "C_FUNC",
	"initial":            "INITIAL",
	"module":             "MODULE",
	"packedarraydtype":   "PACKED_ARRAY_DTYPE",
	"refdtype":           "REF_DTYPE",
	"scope":              "SCOPE",
	"sengate":            "SEN_GATE",
	"senitem":            "SEN_ITEM",
	"structdtype":        "STRUCT_DTYPE",
	"topscope":           "TOP_SCOPE",
	"typetable":          "TYPE_TABLE",
	"unpackedarraydtype": "UNPACKED_ARRAY_DTYPE",
	"var":                "VAR",
	"varref":             "VAR_REF",
	"varscope":           "VAR_SCOPE",
	"const":              "CONST",
	"range":              "RANGE",
}

func resolveNode(tag string) string {
	return nodeKind[tag]
}
