package diag

import (
	"encoding/hex"
	"fmt"
	"strings"

	der "github.com/unkn0wn-root/asn1der"
)

// Dump renders v as indented text, one value per line:
//
//	SEQUENCE {
//	  INTEGER 7
//	  OCTET STRING 37e4
//	}
func Dump(v der.Value) string {
	var sb strings.Builder
	dump(&sb, v, 0)
	return sb.String()
}

func dump(sb *strings.Builder, v der.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch x := v.(type) {
	case der.Boolean:
		fmt.Fprintf(sb, "%sBOOLEAN %t\n", indent, bool(x))
	case der.Integer:
		fmt.Fprintf(sb, "%sINTEGER %s\n", indent, x.Big())
	case der.Null:
		fmt.Fprintf(sb, "%sNULL\n", indent)
	case der.OctetString:
		fmt.Fprintf(sb, "%sOCTET STRING %s\n", indent, hex.EncodeToString(x))
	case der.UTF8String:
		fmt.Fprintf(sb, "%sUTF8String %q\n", indent, string(x))
	case der.Sequence:
		fmt.Fprintf(sb, "%sSEQUENCE {\n", indent)
		for _, c := range x {
			dump(sb, c, depth+1)
		}
		fmt.Fprintf(sb, "%s}\n", indent)
	default:
		fmt.Fprintf(sb, "%s%T\n", indent, v)
	}
}
