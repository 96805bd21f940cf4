package catalog

import "regtables/internal"

const (
	DegreesFile  = "degrees.csv"
	ContractFile = "contract_dept.csv"
)

// Specs is the extraction table, processed in order.
//
// The degree table (appendix 2, page 51) and the contract department table
// (appendix 3, page 53) share most columns and page 52 is in both ranges;
// the installation type column is what tells them apart.
var Specs = []internal.ExtractionSpec{
	{
		Name:    "degrees",
		Targets: internal.NewColumnSet(ColInstallingCollege, ColDepartment, ColDegreeType),
		Outputs: []string{ColInstallingCollege, ColDepartment, ColDegreeType},
		Path:    DegreesFile,
		Pages:   &internal.PageRange{Start: 50, End: 52},
		Exclude: internal.NewColumnSet(ColInstallationType),
	},
	{
		Name: "contract",
		Targets: internal.NewColumnSet(
			ColInstallingCollege, ColInstallationType, ColDepartment,
			ColDegreeType, ColAdmissionQuota, ColOperatingPeriod,
		),
		Outputs: []string{
			ColInstallingCollege, ColInstallationType, ColDepartment,
			ColDegreeType, ColAdmissionQuota, ColOperatingPeriod,
		},
		Path:    ContractFile,
		Pages:   &internal.PageRange{Start: 52, End: 54},
		Require: internal.NewColumnSet(ColInstallationType),
	},
}
