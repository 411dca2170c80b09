package mapper_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dephea/bitrix-task/internal/adapter/bitrix/mapper"
	"github.com/dephea/bitrix-task/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCreateCommentRequest_Renames(t *testing.T) {
	fields, err := mapper.MapCreateCommentRequest(parseObject(t, `{"message":"Looks good","authorId":3}`))
	require.NoError(t, err)

	data, err := json.Marshal(fields)
	require.NoError(t, err)
	require.JSONEq(t, `{"POST_MESSAGE":"Looks good","AUTHOR_ID":3}`, string(data))
}

func TestMapCreateCommentRequest_AuthorIsOptional(t *testing.T) {
	fields, err := mapper.MapCreateCommentRequest(parseObject(t, `{"message":"Hi"}`))
	require.NoError(t, err)
	assert.Nil(t, fields.AuthorID)
	assert.Equal(t, "Hi", *fields.PostMessage)
}

func TestMapCreateCommentRequest_ListsEveryUnexpectedField(t *testing.T) {
	_, err := mapper.MapCreateCommentRequest(parseObject(t, `{"message":"Hi","taskId":1,"POST_DATE":"now"}`))

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, domain.ValidationUnexpectedField, validationErr.Kind)
	assert.Equal(t, []string{"taskId", "POST_DATE"}, validationErr.Fields)
}

func TestMapCreateCommentRequest_InvalidAuthor(t *testing.T) {
	_, err := mapper.MapCreateCommentRequest(parseObject(t, `{"message":"Hi","authorId":"bob"}`))

	var validationErr *domain.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"authorId"}, validationErr.Fields)
}

func TestMapCreateCommentResponse(t *testing.T) {
	id, err := mapper.MapCreateCommentResponse([]byte(`{"result":1041}`))
	require.NoError(t, err)
	assert.Equal(t, "1041", id)

	_, err = mapper.MapCreateCommentResponse([]byte(`{"result":null}`))
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	_, err = mapper.MapCreateCommentResponse([]byte(`{}`))
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestMapGetCommentsResponse_Projects(t *testing.T) {
	comments, err := mapper.MapGetCommentsResponse([]byte(`{
		"result": [
			{"ID":"10","AUTHOR_ID":"3","AUTHOR_NAME":"Ivan","POST_MESSAGE":"First","POST_DATE":"2026-02-01T10:00:00+03:00"},
			{"ID":"11","AUTHOR_ID":"4","POST_MESSAGE":"Second","POST_DATE":"2026-02-02T10:00:00+03:00","ATTACHED_OBJECTS":{}}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "10", comments[0].ID)
	require.NotNil(t, comments[0].AuthorID)
	assert.Equal(t, int64(3), *comments[0].AuthorID)
	assert.Equal(t, "First", comments[0].Message)
	assert.Equal(t, "2026-02-01T10:00:00+03:00", *comments[0].CreatedAt)
	assert.Equal(t, "Second", comments[1].Message)
}

func TestMapGetCommentsResponse_EmptyWhenResultMissing(t *testing.T) {
	for _, body := range []string{`{}`, `{"result":null}`, `{"result":{}}`} {
		comments, err := mapper.MapGetCommentsResponse([]byte(body))
		require.NoError(t, err)
		assert.NotNil(t, comments)
		assert.Empty(t, comments)
	}
}
