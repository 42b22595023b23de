package internal

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// File types. Zero means "detect from the file name".
const (
	FileTypeAuto    = 0
	FileTypeHTML    = 1
	FileTypeTXT     = 2
	FileTypeXML     = 3
	FileTypeJSON    = 4
	FileTypeCSV     = 5
	FileTypeMD      = 6
	FileTypeDOC     = 7
	FileTypeDOCX    = 8
	FileTypeXLS     = 9
	FileTypeXLSX    = 10
	FileTypePPT     = 11
	FileTypePPTX    = 12
	FileTypePDF     = 13
	FileTypeODT     = 15
	FileTypeRTF     = 16
	FileTypeTAR     = 18
	FileTypeGZ      = 19
	FileTypeTARGZ   = 20
	FileTypeZIP     = 21
	FileType7Z      = 22
	FileTypeRAR     = 23
	FileTypeBZ2     = 24
	FileTypeJAR     = 25
	FileTypeXZ      = 29
	FileTypeUnknown = 114
	FileTypeVSDX    = 201
)

var suffixMap = map[string]int{
	"html":     FileTypeHTML,
	"htm":      FileTypeHTML,
	"xhtml":    FileTypeHTML,
	"txt":      FileTypeTXT,
	"text":     FileTypeTXT,
	"dic":      FileTypeTXT,
	"lst":      FileTypeTXT,
	"words":    FileTypeTXT,
	"log":      FileTypeTXT,
	"xml":      FileTypeXML,
	"json":     FileTypeJSON,
	"csv":      FileTypeCSV,
	"tsv":      FileTypeCSV,
	"md":       FileTypeMD,
	"markdown": FileTypeMD,
	"doc":      FileTypeDOC,
	"docx":     FileTypeDOCX,
	"xls":      FileTypeXLS,
	"xlsx":     FileTypeXLSX,
	"ppt":      FileTypePPT,
	"pptx":     FileTypePPTX,
	"pdf":      FileTypePDF,
	"odt":      FileTypeODT,
	"rtf":      FileTypeRTF,
	"tar":      FileTypeTAR,
	"gz":       FileTypeGZ,
	"tgz":      FileTypeTARGZ,
	"tar.gz":   FileTypeTARGZ,
	"zip":      FileTypeZIP,
	"7z":       FileType7Z,
	"rar":      FileTypeRAR,
	"bz2":      FileTypeBZ2,
	"jar":      FileTypeJAR,
	"war":      FileTypeJAR,
	"xz":       FileTypeXZ,
	"vsdx":     FileTypeVSDX,
}

var typeNames = map[int]string{
	FileTypeAuto:    "auto",
	FileTypeHTML:    "html",
	FileTypeTXT:     "txt",
	FileTypeXML:     "xml",
	FileTypeJSON:    "json",
	FileTypeCSV:     "csv",
	FileTypeMD:      "md",
	FileTypeDOC:     "doc",
	FileTypeDOCX:    "docx",
	FileTypeXLS:     "xls",
	FileTypeXLSX:    "xlsx",
	FileTypePPT:     "ppt",
	FileTypePPTX:    "pptx",
	FileTypePDF:     "pdf",
	FileTypeODT:     "odt",
	FileTypeRTF:     "rtf",
	FileTypeTAR:     "tar",
	FileTypeGZ:      "gz",
	FileTypeTARGZ:   "tar.gz",
	FileTypeZIP:     "zip",
	FileType7Z:      "7z",
	FileTypeRAR:     "rar",
	FileTypeBZ2:     "bz2",
	FileTypeJAR:     "jar",
	FileTypeXZ:      "xz",
	FileTypeUnknown: "unknown",
	FileTypeVSDX:    "vsdx",
}

// DetectFileType maps a file name to a file type by its suffix. Names with
// no known suffix map to FileTypeUnknown.
func DetectFileType(filename string) int {
	lower := strings.ToLower(filepath.Base(filename))
	if strings.HasSuffix(lower, ".tar.gz") {
		return FileTypeTARGZ
	}
	ext := strings.TrimPrefix(filepath.Ext(lower), ".")
	if ext == "" && lower == "words" {
		// /usr/share/dict/words
		return FileTypeTXT
	}
	if t, ok := suffixMap[ext]; ok {
		return t
	}
	return FileTypeUnknown
}

// FileTypeName returns the canonical suffix of a file type.
func FileTypeName(fileType int) string {
	if name, ok := typeNames[fileType]; ok {
		return name
	}
	return "type-" + strconv.Itoa(fileType)
}

// ParseFileType accepts a suffix such as "gz" or a numeric file type.
// The empty string and "auto" yield FileTypeAuto.
func ParseFileType(s string) (int, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	if s == "" || s == "auto" {
		return FileTypeAuto, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := typeNames[n]; !ok {
			return 0, fmt.Errorf("unknown file type %d", n)
		}
		return n, nil
	}
	if s == "unknown" {
		return FileTypeUnknown, nil
	}
	if t, ok := suffixMap[s]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown file type %q", s)
}
