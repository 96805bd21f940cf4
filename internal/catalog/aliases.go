package catalog

// Canonical column names, used as CSV headers.
const (
	ColInstallingCollege = "installing_college"
	ColInstallationType  = "installation_type"
	ColDepartment        = "department_or_major"
	ColDegreeType        = "degree_type"
	ColAdmissionQuota    = "admission_quota"
	ColOperatingPeriod   = "operating_period"
)

// ColumnAlias lists the literal header spellings found in the regulation for
// one canonical column. Variants are compared after util.NormalizeHeader.
type ColumnAlias struct {
	Canonical string   `yaml:"canonical"`
	Variants  []string `yaml:"variants"`
}

var ColumnAliases = []ColumnAlias{
	{Canonical: ColInstallingCollege, Variants: []string{ColInstallingCollege, "설치대학", "대학", "대 학"}},
	{Canonical: ColInstallationType, Variants: []string{ColInstallationType, "설치형태"}},
	{Canonical: ColDepartment, Variants: []string{ColDepartment, "학과_전공", "학과또는전공", "학과 또는 전공"}},
	{Canonical: ColDegreeType, Variants: []string{ColDegreeType, "학위_종류", "학위의종류"}},
	{Canonical: ColAdmissionQuota, Variants: []string{ColAdmissionQuota, "입학정원_명", "입학정원(명)", "입학정원"}},
	{Canonical: ColOperatingPeriod, Variants: []string{ColOperatingPeriod, "설치_운영기간", "설치·운영기간", "설치운영기간"}},
}
