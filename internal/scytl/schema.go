// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scytl

import "encoding/xml"

// The workbook format is Excel 2003 SpreadsheetML. Two namespaces cover
// everything the extractor touches: the spreadsheet namespace for
// workbook/table structure and the office namespace for the document
// metadata block. Prefixes in the source file are arbitrary; the URIs
// are the contract.
const (
	nsSpreadsheet = "urn:schemas-microsoft-com:office:spreadsheet"
	nsOffice      = "urn:schemas-microsoft-com:office:office"
)

func ssName(local string) xml.Name {
	return xml.Name{Space: nsSpreadsheet, Local: local}
}

func officeName(local string) xml.Name {
	return xml.Name{Space: nsOffice, Local: local}
}

// Element names.
var (
	elemWorkbook  = ssName("Workbook")
	elemWorksheet = ssName("Worksheet")
	elemTable     = ssName("Table")
	elemRow       = ssName("Row")
	elemCell      = ssName("Cell")
	elemData      = ssName("Data")

	elemDocumentProperties = officeName("DocumentProperties")
	elemTitle              = officeName("Title")
	elemAuthor             = officeName("Author")
	elemCreated            = officeName("Created")
)

// Attribute names.
var (
	attrName        = ssName("Name")
	attrStyleID     = ssName("StyleID")
	attrType        = ssName("Type")
	attrMergeAcross = ssName("MergeAcross")
)

// Cell styles and datum types the schema cross-checks against.
const (
	stylePage        = "Page"
	styleVoteCount   = "VoteCount"
	styleHeaderLabel = "headerLbl"

	typeString = "String"
	typeNumber = "Number"
)

// Well-known worksheet and column names.
const (
	sheetTableOfContents  = "Table of Contents"
	sheetRegisteredVoters = "Registered Voters"

	columnRegisteredVoters = "Registered Voters"
	columnBallotsCast      = "Ballots Cast"
	columnVoterTurnout     = "Voter Turnout"
)
