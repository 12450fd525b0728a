package query

// Aggregate filters appear in groupBy "having" clauses. They accept the plain
// filter keys plus the aggregate keys below, all in one object.

var (
	aggregateKeys        = []string{"_count", "_min", "_max"}
	numericAggregateKeys = []string{"_count", "_avg", "_sum", "_min", "_max"}
)

// WithAggregates extends filter F with _count, _min and _max.
type WithAggregates[F any] struct {
	Filter F
	Count  *IntFilter
	Min    *F
	Max    *F
}

type aggregatesJSON[F any] struct {
	Count *IntFilter `json:"_count,omitempty"`
	Min   *F         `json:"_min,omitempty"`
	Max   *F         `json:"_max,omitempty"`
}

type (
	StringWithAggregatesFilter           = WithAggregates[StringFilter]
	StringNullableWithAggregatesFilter   = WithAggregates[StringNullableFilter]
	BoolWithAggregatesFilter             = WithAggregates[BoolFilter]
	DateTimeWithAggregatesFilter         = WithAggregates[DateTimeFilter]
	DateTimeNullableWithAggregatesFilter = WithAggregates[DateTimeNullableFilter]
)

func (w WithAggregates[F]) MarshalJSON() ([]byte, error) {
	return mergeObjects(w.Filter, aggregatesJSON[F]{Count: w.Count, Min: w.Min, Max: w.Max})
}

func (w *WithAggregates[F]) UnmarshalJSON(data []byte) error {
	base, picked, err := splitObject(data, aggregateKeys...)
	if err != nil {
		return err
	}
	*w = WithAggregates[F]{}
	if err := DecodeStrict(base, &w.Filter); err != nil {
		return err
	}
	if picked == nil {
		return nil
	}
	var aggs aggregatesJSON[F]
	if err := DecodeStrict(picked, &aggs); err != nil {
		return err
	}
	w.Count, w.Min, w.Max = aggs.Count, aggs.Min, aggs.Max
	return nil
}

// WithNumericAggregates extends a numeric filter F with _count, _avg, _sum,
// _min and _max.
type WithNumericAggregates[F any] struct {
	Filter F
	Count  *IntFilter
	Avg    *FloatNullableFilter
	Sum    *F
	Min    *F
	Max    *F
}

type numericAggregatesJSON[F any] struct {
	Count *IntFilter           `json:"_count,omitempty"`
	Avg   *FloatNullableFilter `json:"_avg,omitempty"`
	Sum   *F                   `json:"_sum,omitempty"`
	Min   *F                   `json:"_min,omitempty"`
	Max   *F                   `json:"_max,omitempty"`
}

type (
	IntWithAggregatesFilter         = WithNumericAggregates[IntFilter]
	IntNullableWithAggregatesFilter = WithNumericAggregates[IntNullableFilter]
)

func (w WithNumericAggregates[F]) MarshalJSON() ([]byte, error) {
	return mergeObjects(w.Filter, numericAggregatesJSON[F]{
		Count: w.Count,
		Avg:   w.Avg,
		Sum:   w.Sum,
		Min:   w.Min,
		Max:   w.Max,
	})
}

func (w *WithNumericAggregates[F]) UnmarshalJSON(data []byte) error {
	base, picked, err := splitObject(data, numericAggregateKeys...)
	if err != nil {
		return err
	}
	*w = WithNumericAggregates[F]{}
	if err := DecodeStrict(base, &w.Filter); err != nil {
		return err
	}
	if picked == nil {
		return nil
	}
	var aggs numericAggregatesJSON[F]
	if err := DecodeStrict(picked, &aggs); err != nil {
		return err
	}
	w.Count, w.Avg, w.Sum, w.Min, w.Max = aggs.Count, aggs.Avg, aggs.Sum, aggs.Min, aggs.Max
	return nil
}

// EnumWithAggregatesFilter extends an enum filter with _count, _min and _max.
type EnumWithAggregatesFilter[E Enum] = WithAggregates[EnumFilter[E]]
