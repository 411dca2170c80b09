package mapper

import (
	"encoding/json"

	"github.com/dephea/bitrix-task/internal/core/domain"
	"github.com/dephea/bitrix-task/pkg/jsonobject"
)

var allowedCommentFields = map[string]struct{}{
	"authorId": {},
	"message":  {},
}

// CommentFields is the provider comment write payload. Nil fields are not sent.
type CommentFields struct {
	PostMessage *string `json:"POST_MESSAGE,omitempty"`
	AuthorID    *int64  `json:"AUTHOR_ID,omitempty"`
}

type providerComment struct {
	ID          code    `json:"ID"`
	AuthorID    flexInt `json:"AUTHOR_ID"`
	PostMessage string  `json:"POST_MESSAGE"`
	PostDate    *string `json:"POST_DATE"`
}

// MapCreateCommentRequest applies the comment whitelist and renames the payload.
func MapCreateCommentRequest(input *jsonobject.Object) (CommentFields, error) {
	if extra := input.Except(allowedCommentFields); len(extra) > 0 {
		return CommentFields{}, &domain.ValidationError{Kind: domain.ValidationUnexpectedField, Fields: extra}
	}

	var (
		fields  CommentFields
		invalid []string
	)
	if raw, ok := input.Get("message"); ok {
		message, err := decodeText(raw)
		if err != nil {
			invalid = append(invalid, "message")
		}
		fields.PostMessage = message
	}
	if raw, ok := input.Get("authorId"); ok {
		authorID, err := decodeID(raw)
		if err != nil {
			invalid = append(invalid, "authorId")
		}
		fields.AuthorID = authorID
	}

	if len(invalid) > 0 {
		return CommentFields{}, &domain.ValidationError{Kind: domain.ValidationInvalidValue, Fields: invalid}
	}
	return fields, nil
}

// MapCreateCommentResponse returns the id of the comment the provider just created.
func MapCreateCommentResponse(body []byte) (string, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return "", err
	}

	var id code
	if err := json.Unmarshal(env.Result, &id); err != nil || id == "" {
		return "", &domain.MappingError{Reason: "missing comment id in result"}
	}
	return string(id), nil
}

// MapGetCommentsResponse projects the result list. Comments are not nested under a key.
func MapGetCommentsResponse(body []byte) ([]domain.Comment, error) {
	env, err := decodeEnvelope(body)
	if err != nil {
		return nil, err
	}

	comments := []domain.Comment{}
	if !isArray(env.Result) {
		return comments, nil
	}

	var result []providerComment
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, &domain.MappingError{Reason: "result: " + err.Error()}
	}
	for _, c := range result {
		comments = append(comments, domain.Comment{
			ID:        string(c.ID),
			AuthorID:  c.AuthorID.ptr(),
			Message:   c.PostMessage,
			CreatedAt: c.PostDate,
		})
	}
	return comments, nil
}
