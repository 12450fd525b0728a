package schemas

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrazmi/pollschema/core/scaffolding/query"
	"github.com/jrazmi/pollschema/sdk/cryptids"
	"github.com/jrazmi/pollschema/sdk/validation"
)

func fakeUser() User {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return User{
		ID:        cryptids.MustCUID(),
		Name:      validation.Ptr(gofakeit.Name()),
		Email:     validation.Ptr(gofakeit.Email()),
		Image:     validation.Ptr(gofakeit.URL()),
		Role:      RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =============================================================================
// Unique selectors
// =============================================================================

func TestWhereUnique_RequiresASelector(t *testing.T) {
	for _, m := range Default().Models() {
		_, err := Default().Parse(m.Name, ShapeWhereUnique, []byte(`{}`))
		issues := requireIssues(t, err)
		require.Len(t, issues, 1, m.Name)
		assert.Equal(t, "", issues[0].Path, m.Name)
		assert.Equal(t, validation.CodeUniqueSelector, issues[0].Code, m.Name)
	}
}

func TestWhereUnique_FiltersAloneAreNotEnough(t *testing.T) {
	_, err := Parse[UserWhereUniqueInput]([]byte(`{"AND": {"name": "x"}}`))
	issues := requireIssues(t, err)
	assert.Equal(t, validation.CodeUniqueSelector, issues[0].Code)
	assert.Contains(t, issues[0].Message, "id, email")
}

func TestWhereUnique_NestedPath(t *testing.T) {
	_, err := Parse[PollFindUniqueArgs]([]byte(`{"where": {}}`))
	issues := requireIssues(t, err)
	assert.Equal(t, "where", issues[0].Path)
	assert.Equal(t, validation.CodeUniqueSelector, issues[0].Code)

	id := uuid.NewString()
	args, err := Parse[PollFindUniqueArgs]([]byte(fmt.Sprintf(`{"where": {"id": %q}}`, id)))
	require.NoError(t, err)
	assert.Equal(t, id, *args.Where.ID)
}

func TestWhereUnique_Formats(t *testing.T) {
	_, err := Parse[UserWhereUniqueInput]([]byte(`{"id": "123"}`))
	issues := requireIssues(t, err)
	assert.Equal(t, "id", issues[0].Path)
	assert.Equal(t, validation.CodeInvalidString, issues[0].Code)

	_, err = Parse[CategoryWhereUniqueInput]([]byte(`{"slug": "Not A Slug"}`))
	issues = requireIssues(t, err)
	assert.Equal(t, "slug", issues[0].Path)
}

func TestWhereUnique_CompoundKeys(t *testing.T) {
	tests := []struct {
		name  string
		model string
		input string
		path  string
	}{
		{
			name:  "account missing provider account id",
			model: "Account",
			input: `{"provider_providerAccountId": {"provider": "github"}}`,
			path:  "provider_providerAccountId.providerAccountId",
		},
		{
			name:  "poll option missing position",
			model: "PollOption",
			input: fmt.Sprintf(`{"pollId_position": {"pollId": %q}}`, uuid.NewString()),
			path:  "pollId_position.position",
		},
		{
			name:  "verification token missing token",
			model: "VerificationToken",
			input: `{"identifier_token": {"identifier": "a@b.co"}}`,
			path:  "identifier_token.token",
		},
		{
			name:  "blog like bad user id",
			model: "BlogLike",
			input: fmt.Sprintf(`{"userId_blogId": {"userId": "nope", "blogId": %q}}`, cryptids.MustCUID()),
			path:  "userId_blogId.userId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Default().Parse(tt.model, ShapeWhereUnique, []byte(tt.input))
			issues := requireIssues(t, err)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.path, issues[0].Path)
		})
	}

	w, err := Parse[PollOptionWhereUniqueInput]([]byte(fmt.Sprintf(
		`{"pollId_position": {"pollId": %q, "position": 0}}`, uuid.NewString())))
	require.NoError(t, err)
	assert.Equal(t, 0, *w.PollIDPosition.Position)
}

func TestWhereUnique_AcceptsFilters(t *testing.T) {
	w, err := Parse[PollWhereUniqueInput]([]byte(fmt.Sprintf(
		`{"id": %q, "isDeleted": false, "category": {"is": {"slug": "tech"}}}`, uuid.NewString())))
	require.NoError(t, err)
	assert.False(t, *w.IsDeleted.Equals)
	assert.Equal(t, "tech", *w.Category.Is.Slug.Equals)

	like, err := Parse[BlogLikeWhereUniqueInput]([]byte(fmt.Sprintf(
		`{"userId_blogId": {"userId": %q, "blogId": %q}, "createdAt": {"gt": "2024-01-01T00:00:00Z"}}`,
		cryptids.MustCUID(), cryptids.MustCUID())))
	require.NoError(t, err)
	require.NotNil(t, like.CreatedAt.Gt)

	_, err = Parse[PollWhereUniqueInput]([]byte(`{"isDeleted": false}`))
	issues := requireIssues(t, err)
	assert.Equal(t, validation.CodeUniqueSelector, issues[0].Code)

	_, err = Parse[PollWhereUniqueInput]([]byte(fmt.Sprintf(
		`{"id": %q, "question": {"mode": "loud"}}`, uuid.NewString())))
	issues = requireIssues(t, err)
	assert.Equal(t, "question.mode", issues[0].Path)
}

// =============================================================================
// Filters
// =============================================================================

func TestWhere_Filters(t *testing.T) {
	args, err := Parse[PollFindManyArgs]([]byte(`{
		"where": {
			"question": {"contains": "editor", "mode": "insensitive"},
			"description": null,
			"isDeleted": false,
			"category": {"is": {"slug": "tech"}},
			"options": {"some": {"text": {"startsWith": "V"}}},
			"newsItem": null,
			"OR": [{"closesAt": {"gt": "2030-01-01T00:00:00Z"}}, {"closesAt": null}]
		},
		"orderBy": [{"createdAt": "desc"}, {"closesAt": {"sort": "asc", "nulls": "last"}}],
		"take": 20
	}`))
	require.NoError(t, err)

	w := args.Where
	assert.Equal(t, "editor", *w.Question.Contains)
	assert.Equal(t, query.ModeInsensitive, w.Question.Mode)
	assert.True(t, w.Description.IsNullMatch())
	assert.False(t, *w.IsDeleted.Equals)
	assert.Equal(t, "tech", *w.Category.Is.Slug.Equals)
	assert.Equal(t, "V", *w.Options.Some.Text.StartsWith)
	assert.True(t, w.NewsItem.IsNull)
	require.Len(t, w.OR, 2)
	assert.True(t, w.OR[1].ClosesAt.IsNullMatch())
	require.Len(t, args.OrderBy, 2)
	assert.Equal(t, query.Desc, args.OrderBy[0].CreatedAt)
}

func TestWhere_Issues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
	}{
		{"null on required column", `{"where": {"question": null}}`, validation.CodeInvalidType},
		{"unknown column", `{"where": {"title": "x"}}`, validation.CodeUnrecognizedKeys},
		{"bad query mode", `{"where": {"question": {"contains": "x", "mode": "loud"}}}`, validation.CodeInvalidEnumValue},
		{"bad order direction", `{"orderBy": {"question": "up"}}`, validation.CodeInvalidEnumValue},
		{"bad distinct field", `{"distinct": ["title"]}`, validation.CodeInvalidEnumValue},
		{"take too large", `{"take": 1000}`, validation.CodeTooBig},
		{"select and include", `{"select": {"id": true}, "include": {"options": true}}`, validation.CodeConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse[PollFindManyArgs]([]byte(tt.input))
			issues := requireIssues(t, err)
			assert.Equal(t, tt.code, issues[0].Code)
		})
	}
}

func TestWhere_EmptyListSurvivesEncoding(t *testing.T) {
	w, err := Parse[PollWhereInput]([]byte(`{"id": {"in": []}, "closesAt": {"notIn": []}}`))
	require.NoError(t, err)

	out, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": {"in": []}, "closesAt": {"notIn": []}}`, string(out))
}

func TestIssuePaths_RelationWrappers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
	}{
		{"include args", `{"include": {"votes": {"take": 1000}}}`, "include.votes.take"},
		{"select args", `{"select": {"options": {"take": -1000}}}`, "select.options.take"},
		{"optional relation is", `{"where": {"newsItem": {"is": {"title": {"mode": "loud"}}}}}`, "where.newsItem.is.title.mode"},
		{"optional relation isNot", `{"where": {"newsItem": {"isNot": {"title": {"mode": "loud"}}}}}`, "where.newsItem.isNot.title.mode"},
		{"required relation is", `{"where": {"category": {"is": {"name": {"mode": "loud"}}}}}`, "where.category.is.name.mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse[PollFindManyArgs]([]byte(tt.input))
			issues := requireIssues(t, err)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.path, issues[0].Path)
		})
	}
}

func TestWhere_RoleEnum(t *testing.T) {
	args, err := Parse[UserFindManyArgs]([]byte(`{"where": {"role": {"in": ["USER", "ADMIN"]}}}`))
	require.NoError(t, err)
	assert.Equal(t, []Role{RoleUser, RoleAdmin}, args.Where.Role.In)

	_, err = Parse[UserFindManyArgs]([]byte(`{"where": {"role": "ROOT"}}`))
	issues := requireIssues(t, err)
	assert.Equal(t, validation.CodeInvalidEnumValue, issues[0].Code)
}

func TestSelect_NestedRelations(t *testing.T) {
	args, err := Parse[UserFindUniqueArgs]([]byte(fmt.Sprintf(`{
		"where": {"email": %q},
		"select": {
			"id": true,
			"votes": {"where": {"voterToken": null}, "take": 5},
			"info": true,
			"_count": {"select": {"votes": true}}
		}
	}`, gofakeit.Email())))
	require.NoError(t, err)

	s := args.Select
	assert.True(t, s.ID)
	assert.True(t, s.Info.Enabled)
	require.NotNil(t, s.Votes.Args)
	assert.Equal(t, 5, *s.Votes.Args.Take)
	assert.True(t, s.Count.Args.Select.Votes)
}

func TestGroupBy(t *testing.T) {
	args, err := Parse[VoteGroupByArgs]([]byte(`{
		"by": ["pollId", "optionId"],
		"having": {"createdAt": {"_max": {"gte": "2024-01-01T00:00:00Z"}}},
		"orderBy": {"pollId": "asc"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, query.OneOrMany[VoteScalarFieldEnum]{"pollId", "optionId"}, args.By)
	require.NotNil(t, args.Having.CreatedAt.Max)

	_, err = Parse[VoteGroupByArgs]([]byte(`{"by": ["poll"]}`))
	issues := requireIssues(t, err)
	assert.Equal(t, "by[0]", issues[0].Path)
	assert.Equal(t, validation.CodeInvalidEnumValue, issues[0].Code)
}

// =============================================================================
// Writes
// =============================================================================

func TestCreate_CheckedWithNestedWrites(t *testing.T) {
	args, err := Parse[UserCreateArgs]([]byte(fmt.Sprintf(`{
		"data": {
			"email": %q,
			"accounts": {"create": {"type": "oauth", "provider": "github", "providerAccountId": "42"}},
			"info": {"create": {"bio": "hello"}}
		}
	}`, gofakeit.Email())))
	require.NoError(t, err)

	require.NotNil(t, args.Data.Checked)
	assert.Nil(t, args.Data.Unchecked)
	require.Len(t, args.Data.Checked.Accounts.Create, 1)
	assert.Equal(t, "github", args.Data.Checked.Accounts.Create[0].Provider)
	assert.Equal(t, "hello", *args.Data.Checked.Info.Create.Bio)
}

func TestCreate_Unchecked(t *testing.T) {
	categoryID := uuid.NewString()
	args, err := Parse[PollCreateArgs]([]byte(fmt.Sprintf(
		`{"data": {"question": "Tabs or spaces?", "categoryId": %q, "multipleChoice": true}}`, categoryID)))
	require.NoError(t, err)

	require.NotNil(t, args.Data.Unchecked)
	assert.Equal(t, categoryID, args.Data.Unchecked.CategoryID)
	assert.True(t, *args.Data.Unchecked.MultipleChoice)
}

func TestCreate_Issues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
		code  string
	}{
		{
			name:  "required relation",
			input: `{"data": {"question": "Tabs or spaces?"}}`,
			path:  "data.category",
			code:  validation.CodeRequired,
		},
		{
			name:  "bad foreign key",
			input: `{"data": {"question": "Tabs or spaces?", "categoryId": "nope"}}`,
			path:  "data.categoryId",
			code:  validation.CodeInvalidString,
		},
		{
			name:  "missing question",
			input: fmt.Sprintf(`{"data": {"categoryId": %q}}`, uuid.NewString()),
			path:  "data.question",
			code:  validation.CodeRequired,
		},
		{
			name:  "nested connect without selector",
			input: `{"data": {"question": "Tabs or spaces?", "category": {"connect": {}}}}`,
			path:  "data.category.connect",
			code:  validation.CodeUniqueSelector,
		},
		{
			name:  "missing data",
			input: `{}`,
			path:  "data",
			code:  validation.CodeRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse[PollCreateArgs]([]byte(tt.input))
			issues := requireIssues(t, err)
			issue, ok := findIssue(issues, tt.path)
			require.True(t, ok, "no issue at %s in %v", tt.path, issues)
			assert.Equal(t, tt.code, issue.Code)
		})
	}
}

func TestCreateMany(t *testing.T) {
	pollID := uuid.NewString()
	args, err := Parse[PollOptionCreateManyArgs]([]byte(fmt.Sprintf(`{
		"data": [
			{"pollId": %[1]q, "text": "Vim", "position": 0},
			{"pollId": %[1]q, "text": "Emacs", "position": 1}
		],
		"skipDuplicates": true
	}`, pollID)))
	require.NoError(t, err)
	require.Len(t, args.Data, 2)
	assert.Equal(t, 1, *args.Data[1].Position)

	_, err = Parse[PollOptionCreateManyArgs]([]byte(fmt.Sprintf(`{"data": [{"pollId": %q}]}`, pollID)))
	issues := requireIssues(t, err)
	assert.Equal(t, "data[0].text", issues[0].Path)
}

func TestUpdate_NullAndSet(t *testing.T) {
	id := uuid.NewString()
	args, err := Parse[PollUpdateArgs]([]byte(fmt.Sprintf(`{
		"where": {"id": %q},
		"data": {"question": "Updated?", "description": null, "isArchived": {"set": true}}
	}`, id)))
	require.NoError(t, err)

	data := args.Data.Checked
	require.NotNil(t, data)
	q, ok := data.Question.Value()
	assert.True(t, ok)
	assert.Equal(t, "Updated?", q)
	assert.True(t, data.Description.Set.IsNull())
	assert.True(t, *data.IsArchived.Set)
	assert.False(t, data.ClosesAt.Set.Set)
}

func TestUpdate_Issues(t *testing.T) {
	tests := []struct {
		name  string
		input string
		path  string
		code  string
	}{
		{
			name:  "bad slug",
			input: `{"where": {"slug": "hello"}, "data": {"slug": {"set": "Hello World"}}}`,
			path:  "data.slug",
			code:  validation.CodeInvalidString,
		},
		{
			name:  "missing where",
			input: `{"data": {"title": "x"}}`,
			path:  "where",
			code:  validation.CodeUniqueSelector,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse[BlogUpdateArgs]([]byte(tt.input))
			issues := requireIssues(t, err)
			issue, ok := findIssue(issues, tt.path)
			require.True(t, ok, "no issue at %s in %v", tt.path, issues)
			assert.Equal(t, tt.code, issue.Code)
		})
	}
}

func TestUpdate_NullOnRequiredColumn(t *testing.T) {
	_, err := Parse[BlogUpdateArgs]([]byte(`{"where": {"slug": "hello"}, "data": {"title": null}}`))
	issues := requireIssues(t, err)
	assert.Equal(t, validation.CodeInvalidType, issues[0].Code)
}

func TestUpdate_NestedToMany(t *testing.T) {
	args, err := Parse[PollUpdateArgs]([]byte(fmt.Sprintf(`{
		"where": {"id": %q},
		"data": {
			"options": {
				"create": [{"text": "Nano"}],
				"updateMany": {"where": {"text": {"contains": "vi"}}, "data": {"position": {"increment": 1}}},
				"deleteMany": {"position": {"gt": 5}}
			}
		}
	}`, uuid.NewString())))
	require.NoError(t, err)

	opts := args.Data.Checked.Options
	require.Len(t, opts.Create, 1)
	require.Len(t, opts.UpdateMany, 1)
	assert.Equal(t, 1, *opts.UpdateMany[0].Data.Position.Increment)
	require.Len(t, opts.DeleteMany, 1)
}

func TestUpdate_NestedToOne(t *testing.T) {
	args, err := Parse[InfoUpdateArgs]([]byte(fmt.Sprintf(`{
		"where": {"userId": %q},
		"data": {"user": {"update": {"name": "Ada", "role": "ADMIN"}}}
	}`, cryptids.MustCUID())))
	require.NoError(t, err)

	u := args.Data.Checked.User.Update
	assert.Equal(t, "Ada", *u.Name.Set.Ptr())
	assert.Equal(t, RoleAdmin, *u.Role.Set)

	_, err = Parse[InfoUpdateArgs]([]byte(fmt.Sprintf(`{
		"where": {"userId": %q},
		"data": {"user": {"update": {"role": "ROOT"}}}
	}`, cryptids.MustCUID())))
	issues := requireIssues(t, err)
	assert.Equal(t, "data.user.update.role", issues[0].Path)
	assert.Equal(t, validation.CodeInvalidEnumValue, issues[0].Code)
}

func TestUpdate_RequiredToOneCannotBeRemoved(t *testing.T) {
	where := fmt.Sprintf(`{"id": %q}`, uuid.NewString())

	for _, op := range []string{`{"delete": true}`, `{"disconnect": true}`} {
		_, err := Parse[PollUpdateArgs]([]byte(fmt.Sprintf(`{"where": %s, "data": {"category": %s}}`, where, op)))
		issues := requireIssues(t, err)
		assert.Equal(t, validation.CodeUnrecognizedKeys, issues[0].Code, op)
	}

	_, err := Parse[VoteUpdateArgs]([]byte(fmt.Sprintf(`{"where": %s, "data": {"poll": {"disconnect": true}}}`, where)))
	requireIssues(t, err)

	args, err := Parse[PollUpdateArgs]([]byte(fmt.Sprintf(
		`{"where": %s, "data": {"category": {"connect": {"slug": "tech"}}, "newsItem": {"disconnect": true}}}`, where)))
	require.NoError(t, err)
	assert.Equal(t, "tech", *args.Data.Checked.Category.Connect.Slug)
	assert.True(t, *args.Data.Checked.NewsItem.Disconnect)

	vote, err := Parse[VoteUpdateArgs]([]byte(fmt.Sprintf(`{"where": %s, "data": {"user": {"disconnect": true}}}`, where)))
	require.NoError(t, err)
	assert.True(t, *vote.Data.Checked.User.Disconnect)
}

func TestUpsert(t *testing.T) {
	userID := cryptids.MustCUID()
	blogID := cryptids.MustCUID()
	args, err := Parse[BlogLikeUpsertArgs]([]byte(fmt.Sprintf(`{
		"where": {"userId_blogId": {"userId": %[1]q, "blogId": %[2]q}},
		"create": {"userId": %[1]q, "blogId": %[2]q},
		"update": {}
	}`, userID, blogID)))
	require.NoError(t, err)
	assert.Equal(t, userID, args.Create.Unchecked.UserID)
	assert.Equal(t, blogID, args.Where.UserIDBlogID.BlogID)
}

// =============================================================================
// Defaults
// =============================================================================

func TestOptionalDefaults_ToModel(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	user, err := UserOptionalDefaults{Email: validation.Ptr(gofakeit.Email())}.ToModel(now)
	require.NoError(t, err)
	assert.True(t, validation.IsCUID(user.ID))
	assert.Equal(t, RoleUser, user.Role)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.UpdatedAt)
	assert.NoError(t, Default().Validate(&user))

	poll, err := PollOptionalDefaults{Question: "Best shell?", CategoryID: uuid.NewString()}.ToModel(now)
	require.NoError(t, err)
	_, err = uuid.Parse(poll.ID)
	assert.NoError(t, err)
	assert.True(t, poll.AllowAnonymous)
	assert.False(t, poll.MultipleChoice)
	assert.NoError(t, Default().Validate(&poll))

	given := cryptids.MustCUID()
	author, err := AuthorOptionalDefaults{ID: &given, Name: gofakeit.Name()}.ToModel(now)
	require.NoError(t, err)
	assert.Equal(t, given, author.ID)

	option, err := PollOptionOptionalDefaults{PollID: uuid.NewString(), Text: "Zsh", Position: validation.Ptr(3)}.ToModel(now)
	require.NoError(t, err)
	assert.Equal(t, 3, option.Position)
}
