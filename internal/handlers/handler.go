package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/innofund/innofund-server/internal/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageStore is where uploaded campaign images end up.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
	Ping(ctx context.Context) error
}

// Handler serves the campaign, donation and user routes. Each handler issues
// exactly one call against its collection.
type Handler struct {
	db        *mongo.Database
	campaigns *mongo.Collection
	donations *mongo.Collection
	users     *mongo.Collection
	images    ImageStore
	timeout   time.Duration
	now       func() time.Time
}

// New wires the handlers to database. images may be nil, in which case image
// uploads answer 503.
func New(database *mongo.Database, images ImageStore, timeout time.Duration) *Handler {
	return &Handler{
		db:        database,
		campaigns: database.Collection(db.CampaignsCollection),
		donations: database.Collection(db.DonationsCollection),
		users:     database.Collection(db.UsersCollection),
		images:    images,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Config is the Fiber configuration the gateway runs with.
func Config() fiber.Config {
	return fiber.Config{
		AppName:      "InnoFund",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: ErrorHandler,
	}
}

// ErrorHandler turns anything a handler returns instead of writing a response
// into the same {"error": ...} body the handlers use.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{"error": message})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report JSON names so errors match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h *Handler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.timeout)
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// storeError logs the failing route and answers 500.
func storeError(c *fiber.Ctx, err error, message string) error {
	log.Printf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	return respondError(c, fiber.StatusInternalServerError, message)
}

// bindJSON decodes the body into shape and validates it. When ok is false
// the 400 response has already been written and err is the result of that write.
func bindJSON(c *fiber.Ctx, shape interface{}) (ok bool, err error) {
	if err := c.BodyParser(shape); err != nil {
		return false, respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(shape); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, respondError(c, fiber.StatusBadRequest, err.Error())
		}
		fields := fiber.Map{}
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	return true, nil
}

// bindDocument validates the body against shape and also returns it untouched
// as a document, so fields the shape does not declare are kept. Shapes never
// read _id, and it is dropped from the document: identifiers are always
// assigned by the store.
func bindDocument(c *fiber.Ctx, shape interface{}) (bson.M, bool, error) {
	if ok, err := bindJSON(c, shape); !ok {
		return nil, false, err
	}

	doc, err := decodeDocument(c.Body())
	if err != nil {
		return nil, false, respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	return doc, true, nil
}

// decodeDocument keeps JSON numbers as json.Number so integers reach the
// store as int64 instead of being rounded through float64.
func decodeDocument(body []byte) (bson.M, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	doc := bson.M{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	return doc, nil
}

func parseID(c *fiber.Ctx) (primitive.ObjectID, bool, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return primitive.NilObjectID, false, respondError(c, fiber.StatusBadRequest, "Invalid ID format")
	}
	return id, true, nil
}

func (h *Handler) findAll(c *fiber.Ctx, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return storeError(c, err, "Failed to fetch "+coll.Name())
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return storeError(c, err, "Failed to fetch "+coll.Name())
	}
	return c.JSON(docs)
}

func (h *Handler) findByID(c *fiber.Ctx, coll *mongo.Collection, notFound string) error {
	id, ok, err := parseID(c)
	if !ok {
		return err
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	var doc bson.M
	err = coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return respondError(c, fiber.StatusNotFound, notFound)
	}
	if err != nil {
		return storeError(c, err, "Failed to fetch "+coll.Name())
	}

	return c.JSON(doc)
}

func (h *Handler) insert(c *fiber.Ctx, coll *mongo.Collection, doc bson.M) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return storeError(c, err, "Failed to insert into "+coll.Name())
	}

	return c.JSON(fiber.Map{
		"acknowledged": true,
		"insertedId":   res.InsertedID,
	})
}

func (h *Handler) updateOne(c *fiber.Ctx, coll *mongo.Collection, filter, update bson.M, opts ...*options.UpdateOptions) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	res, err := coll.UpdateOne(ctx, filter, update, opts...)
	if err != nil {
		return storeError(c, err, "Failed to update "+coll.Name())
	}

	return c.JSON(fiber.Map{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedCount": res.UpsertedCount,
		"upsertedId":    res.UpsertedID,
	})
}
