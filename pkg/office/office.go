// Package office registers the parsers for office documents and PDF.
package office

import (
	"wordsearch/internal"
	"wordsearch/pkg/office/doc"
	"wordsearch/pkg/office/docx"
	"wordsearch/pkg/office/odt"
	"wordsearch/pkg/office/pdf"
	"wordsearch/pkg/office/ppt"
	"wordsearch/pkg/office/pptx"
	"wordsearch/pkg/office/rtf"
	"wordsearch/pkg/office/vsdx"
	"wordsearch/pkg/office/xls"
	"wordsearch/pkg/office/xlsx"
)

func init() {
	internal.MustRegisterParser(internal.FileTypeDOC, &doc.OfficeDocParser{})
	internal.MustRegisterParser(internal.FileTypeDOCX, &docx.OfficeDocxParser{})
	internal.MustRegisterParser(internal.FileTypeXLS, &xls.OfficeXlsParser{})
	internal.MustRegisterParser(internal.FileTypeXLSX, &xlsx.OfficeXlsxParser{})
	internal.MustRegisterParser(internal.FileTypePPT, &ppt.OfficePptParser{})
	internal.MustRegisterParser(internal.FileTypePPTX, &pptx.OfficePptxParser{})
	internal.MustRegisterParser(internal.FileTypePDF, &pdf.OfficePdfParser{})
	internal.MustRegisterParser(internal.FileTypeODT, &odt.OfficeOdtParser{})
	internal.MustRegisterParser(internal.FileTypeRTF, &rtf.OfficeRtfParser{})
	internal.MustRegisterParser(internal.FileTypeVSDX, &vsdx.OfficeVsdxParser{})
}
