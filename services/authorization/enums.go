package authorization

// PrincipalType is the kind of principal a role is assigned to.
type PrincipalType string

const (
	PrincipalTypeUser             PrincipalType = "User"
	PrincipalTypeGroup            PrincipalType = "Group"
	PrincipalTypeServicePrincipal PrincipalType = "ServicePrincipal"
	PrincipalTypeForeignGroup     PrincipalType = "ForeignGroup"
	PrincipalTypeDevice           PrincipalType = "Device"
)

// PossiblePrincipalTypeValues returns the known values for PrincipalType.
func PossiblePrincipalTypeValues() []PrincipalType {
	return []PrincipalType{
		PrincipalTypeUser,
		PrincipalTypeGroup,
		PrincipalTypeServicePrincipal,
		PrincipalTypeForeignGroup,
		PrincipalTypeDevice,
	}
}
