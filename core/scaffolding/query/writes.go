package query

// Nested writes. Type parameters follow one convention throughout:
//
//	C  create payload of the related model
//	U  update payload of the related model
//	UM update-many payload of the related model
//	W  where-unique input of the related model
//	F  where input of the related model

// ConnectOrCreate connects the record matching Where or creates it.
type ConnectOrCreate[C, W any] struct {
	Where  W `json:"where"`
	Create C `json:"create"`
}

// CreateManyEnvelope creates several related records in one statement.
type CreateManyEnvelope[C any] struct {
	Data           OneOrMany[C] `json:"data" validate:"required,dive"`
	SkipDuplicates *bool        `json:"skipDuplicates,omitempty"`
}

// ToOneCreate writes a to-one relation while creating the owning record.
type ToOneCreate[C, W any] struct {
	Create          *C                     `json:"create,omitempty"`
	ConnectOrCreate *ConnectOrCreate[C, W] `json:"connectOrCreate,omitempty"`
	Connect         *W                     `json:"connect,omitempty"`
}

// ToManyCreate writes a to-many relation while creating the owning record.
type ToManyCreate[C, W any] struct {
	Create          OneOrMany[C]                     `json:"create,omitempty" validate:"omitempty,dive"`
	ConnectOrCreate OneOrMany[ConnectOrCreate[C, W]] `json:"connectOrCreate,omitempty" validate:"omitempty,dive"`
	CreateMany      *CreateManyEnvelope[C]           `json:"createMany,omitempty"`
	Connect         OneOrMany[W]                     `json:"connect,omitempty" validate:"omitempty,dive"`
}

// Upsert updates the related record or creates it when missing.
type Upsert[C, U any] struct {
	Create C `json:"create"`
	Update U `json:"update"`
}

// ToOneUpdate writes an optional to-one relation while updating the owning
// record.
type ToOneUpdate[C, U, W any] struct {
	Create          *C                     `json:"create,omitempty"`
	ConnectOrCreate *ConnectOrCreate[C, W] `json:"connectOrCreate,omitempty"`
	Upsert          *Upsert[C, U]          `json:"upsert,omitempty"`
	Connect         *W                     `json:"connect,omitempty"`
	Disconnect      *bool                  `json:"disconnect,omitempty"`
	Delete          *bool                  `json:"delete,omitempty"`
	Update          *U                     `json:"update,omitempty"`
}

// ToOneRequiredUpdate writes a required to-one relation. The owning record
// cannot be left without one, so there is no disconnect or delete.
type ToOneRequiredUpdate[C, U, W any] struct {
	Create          *C                     `json:"create,omitempty"`
	ConnectOrCreate *ConnectOrCreate[C, W] `json:"connectOrCreate,omitempty"`
	Upsert          *Upsert[C, U]          `json:"upsert,omitempty"`
	Connect         *W                     `json:"connect,omitempty"`
	Update          *U                     `json:"update,omitempty"`
}

// UpsertWithWhereUnique upserts one record of a to-many relation.
type UpsertWithWhereUnique[C, U, W any] struct {
	Where  W `json:"where"`
	Update U `json:"update"`
	Create C `json:"create"`
}

// UpdateWithWhereUnique updates one record of a to-many relation.
type UpdateWithWhereUnique[U, W any] struct {
	Where W `json:"where"`
	Data  U `json:"data"`
}

// UpdateManyWithWhere updates every related record matching Where.
type UpdateManyWithWhere[UM, F any] struct {
	Where F  `json:"where"`
	Data  UM `json:"data"`
}

// ToManyUpdate writes a to-many relation while updating the owning record.
type ToManyUpdate[C, U, UM, W, F any] struct {
	Create          OneOrMany[C]                             `json:"create,omitempty" validate:"omitempty,dive"`
	ConnectOrCreate OneOrMany[ConnectOrCreate[C, W]]         `json:"connectOrCreate,omitempty" validate:"omitempty,dive"`
	Upsert          OneOrMany[UpsertWithWhereUnique[C, U, W]] `json:"upsert,omitempty" validate:"omitempty,dive"`
	CreateMany      *CreateManyEnvelope[C]                   `json:"createMany,omitempty"`
	Set             OneOrMany[W]                             `json:"set,omitempty" validate:"omitempty,dive"`
	Disconnect      OneOrMany[W]                             `json:"disconnect,omitempty" validate:"omitempty,dive"`
	Delete          OneOrMany[W]                             `json:"delete,omitempty" validate:"omitempty,dive"`
	Connect         OneOrMany[W]                             `json:"connect,omitempty" validate:"omitempty,dive"`
	Update          OneOrMany[UpdateWithWhereUnique[U, W]]   `json:"update,omitempty" validate:"omitempty,dive"`
	UpdateMany      OneOrMany[UpdateManyWithWhere[UM, F]]    `json:"updateMany,omitempty" validate:"omitempty,dive"`
	DeleteMany      OneOrMany[F]                             `json:"deleteMany,omitempty" validate:"omitempty,dive"`
}
