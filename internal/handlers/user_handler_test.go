package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const usersNS = "campaignDB.users"

func TestUserHandlers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create, replace and fetch a user", func(mt *mtest.T) {
		app := newTestApp(mt.DB, nil)

		mt.AddMockResponses(mtest.CreateSuccessResponse())
		status, raw := do(mt.T, app, http.MethodPost, "/users", map[string]interface{}{
			"name":  "Ana",
			"email": "ana@x.com",
		})
		require.Equal(mt, http.StatusOK, status, string(raw))
		userID, ok := decodeObject(mt.T, raw)["insertedId"].(string)
		require.True(mt, ok)
		id, err := primitive.ObjectIDFromHex(userID)
		require.NoError(mt, err)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))
		status, raw = do(mt.T, app, http.MethodPut, "/users/"+userID, map[string]interface{}{
			"name":     "Ana B",
			"email":    "ana@x.com",
			"password": "p",
		})
		require.Equal(mt, http.StatusOK, status, string(raw))
		ack := decodeObject(mt.T, raw)
		assert.EqualValues(mt, 1, ack["matchedCount"])
		assert.EqualValues(mt, 1, ack["modifiedCount"])
		assert.Nil(mt, ack["upsertedId"])

		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Ana B"},
			{Key: "email", Value: "ana@x.com"},
			{Key: "password", Value: "p"},
		}))
		status, raw = do(mt.T, app, http.MethodGet, "/users/"+userID, nil)
		require.Equal(mt, http.StatusOK, status)

		user := decodeObject(mt.T, raw)
		assert.Equal(mt, userID, user["_id"])
		assert.Equal(mt, "Ana B", user["name"])
		assert.Equal(mt, "ana@x.com", user["email"])
		assert.Equal(mt, "p", user["password"])
	})

	mt.Run("list users", func(mt *mtest.T) {
		app := newTestApp(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "ana@x.com"}},
		))

		status, raw := do(mt.T, app, http.MethodGet, "/users", nil)
		require.Equal(mt, http.StatusOK, status)
		assert.Len(mt, decodeList(mt.T, raw), 1)
	})

	mt.Run("get missing user", func(mt *mtest.T) {
		app := newTestApp(mt.DB, nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, usersNS, mtest.FirstBatch))

		status, raw := do(mt.T, app, http.MethodGet, "/users/"+primitive.NewObjectID().Hex(), nil)
		assert.Equal(mt, http.StatusNotFound, status)
		assert.Equal(mt, "User not found", decodeObject(mt.T, raw)["error"])
	})

	mt.Run("create user requires a valid email", func(mt *mtest.T) {
		app := newTestApp(mt.DB, nil)

		status, raw := do(mt.T, app, http.MethodPost, "/users", map[string]interface{}{"name": "Ana"})
		require.Equal(mt, http.StatusBadRequest, status)
		assert.Equal(mt, map[string]interface{}{"email": "required"}, decodeObject(mt.T, raw)["fields"])
	})

	mt.Run("replace unknown user upserts", func(mt *mtest.T) {
		app := newTestApp(mt.DB, nil)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}},
			}},
		))

		status, raw := do(mt.T, app, http.MethodPut, "/users/"+id.Hex(), map[string]interface{}{
			"name":     "Ana",
			"email":    "ana@x.com",
			"password": "p",
		})
		require.Equal(mt, http.StatusOK, status, string(raw))
		assert.Equal(mt, id.Hex(), decodeObject(mt.T, raw)["upsertedId"])
	})

	mt.Run("replace user requires all fields", func(mt *mtest.T) {
		app := newTestApp(mt.DB, nil)

		status, raw := do(mt.T, app, http.MethodPut, "/users/"+primitive.NewObjectID().Hex(), map[string]interface{}{
			"email": "ana@x.com",
		})
		require.Equal(mt, http.StatusBadRequest, status)
		assert.Equal(mt, map[string]interface{}{
			"name":     "required",
			"password": "required",
		}, decodeObject(mt.T, raw)["fields"])
	})

	mt.Run("record sign in by email", func(mt *mtest.T) {
		for _, path := range []string{"/users", "/users/"} {
			app := newTestApp(mt.DB, nil)
			mt.ClearEvents()
			mt.AddMockResponses(mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			))

			status, raw := do(mt.T, app, http.MethodPatch, path, map[string]interface{}{
				"email":          "ana@x.com",
				"lastSigninTime": "Sun, 03 Nov 2024 12:00:00 GMT",
			})
			require.Equal(mt, http.StatusOK, status, path+": "+string(raw))
			assert.EqualValues(mt, 1, decodeObject(mt.T, raw)["modifiedCount"], path)

			evt := mt.GetStartedEvent()
			require.NotNil(mt, evt, path)
			assert.Equal(mt, "update", evt.CommandName, path)
		}
	})

	mt.Run("record sign in requires email", func(mt *mtest.T) {
		app := newTestApp(mt.DB, nil)

		status, _ := do(mt.T, app, http.MethodPatch, "/users", map[string]interface{}{
			"lastSigninTime": "Sun, 03 Nov 2024 12:00:00 GMT",
		})
		assert.Equal(mt, http.StatusBadRequest, status)
	})
}
