package schemas

import "strings"

// Shape names one of the Go types registered for a model.
type Shape string

// Record and input shapes.
const (
	ShapeRecord                    Shape = "record"
	ShapePartial                   Shape = "partial"
	ShapeOptionalDefaults          Shape = "optionalDefaults"
	ShapeSelect                    Shape = "select"
	ShapeInclude                   Shape = "include"
	ShapeWhere                     Shape = "where"
	ShapeWhereUnique               Shape = "whereUnique"
	ShapeOrderBy                   Shape = "orderBy"
	ShapeScalarWhereWithAggregates Shape = "scalarWhereWithAggregates"
	ShapeCreateInput               Shape = "createInput"
	ShapeUncheckedCreateInput      Shape = "uncheckedCreateInput"
	ShapeUpdateInput               Shape = "updateInput"
	ShapeUncheckedUpdateInput      Shape = "uncheckedUpdateInput"
	ShapeCreateManyInput           Shape = "createManyInput"
	ShapeUpdateManyMutationInput   Shape = "updateManyMutationInput"
)

// Operation argument shapes.
const (
	ShapeFindUniqueArgs Shape = "findUniqueArgs"
	ShapeFindFirstArgs  Shape = "findFirstArgs"
	ShapeFindManyArgs   Shape = "findManyArgs"
	ShapeCreateArgs     Shape = "createArgs"
	ShapeUpdateArgs     Shape = "updateArgs"
	ShapeUpsertArgs     Shape = "upsertArgs"
	ShapeDeleteArgs     Shape = "deleteArgs"
	ShapeCreateManyArgs Shape = "createManyArgs"
	ShapeUpdateManyArgs Shape = "updateManyArgs"
	ShapeDeleteManyArgs Shape = "deleteManyArgs"
	ShapeGroupByArgs    Shape = "groupByArgs"
)

// AllShapes lists every shape in display order.
func AllShapes() []Shape {
	return []Shape{
		ShapeRecord,
		ShapePartial,
		ShapeOptionalDefaults,
		ShapeSelect,
		ShapeInclude,
		ShapeWhere,
		ShapeWhereUnique,
		ShapeOrderBy,
		ShapeScalarWhereWithAggregates,
		ShapeCreateInput,
		ShapeUncheckedCreateInput,
		ShapeUpdateInput,
		ShapeUncheckedUpdateInput,
		ShapeCreateManyInput,
		ShapeUpdateManyMutationInput,
		ShapeFindUniqueArgs,
		ShapeFindFirstArgs,
		ShapeFindManyArgs,
		ShapeCreateArgs,
		ShapeUpdateArgs,
		ShapeUpsertArgs,
		ShapeDeleteArgs,
		ShapeCreateManyArgs,
		ShapeUpdateManyArgs,
		ShapeDeleteManyArgs,
		ShapeGroupByArgs,
	}
}

// ParseShape matches s against the known shapes, ignoring case.
func ParseShape(s string) (Shape, bool) {
	for _, shape := range AllShapes() {
		if strings.EqualFold(string(shape), s) {
			return shape, true
		}
	}
	return "", false
}
