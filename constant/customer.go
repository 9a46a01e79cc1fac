package constant

type CustomerKind string

const (
	CustomerKindIndividual   CustomerKind = "individual"
	CustomerKindOrganization CustomerKind = "organization"
)
