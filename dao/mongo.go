package dao

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/fossandhra/payment-fulfillment-service/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	c, err := mongo.Connect(ctx, clientOptions)

	// assume the caller of this func cannot handle the case where there is no database connection so the prog must
	// crash here as the service cannot continue.
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in a crash.
	pingContext, cancel := context.WithDeadline(ctx, time.Now().Add(5*time.Second))
	defer cancel()
	err = c.Ping(pingContext, nil)
	if err != nil {
		log.Error(errors.New("ping to mongodb timed out. please check the connection to mongodb and that it is running"))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = c
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db                  MongoDatabaseInterface
	DonationsCollection string
	MembersCollection   string
	SettingsCollection  string
}

// IsDuplicateKey reports whether an error from the DAO is a unique index
// violation. Membership activation races on the member email and membership
// id indexes resolve through this check.
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// ensureIndexes creates the unique indexes membership activation relies on.
// Failure here must crash the service, as without the indexes the payment id
// and membership id guarantees do not hold.
func (m *MongoService) ensureIndexes() {
	members := m.db.Collection(m.MembersCollection)

	unique := options.Index().SetUnique(true)
	_, err := members.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "membership_id", Value: 1}}, Options: unique},
	})
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// CreateDonationResource will store a pending donation into the database
func (m *MongoService) CreateDonationResource(donation *models.DonationResourceDao) error {

	donation.ID = primitive.NewObjectID()

	collection := m.db.Collection(m.DonationsCollection)
	_, err := collection.InsertOne(context.Background(), donation)
	if err != nil {
		log.Error(err)
		return err
	}

	return nil
}

// GetDonationResource fetches a donation by its hex id
func (m *MongoService) GetDonationResource(id string) (*models.DonationResourceDao, error) {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// a malformed id can never match a stored donation
		return nil, nil
	}

	var donation models.DonationResourceDao
	collection := m.db.Collection(m.DonationsCollection)
	err = collection.FindOne(context.Background(), bson.M{"_id": oid}).Decode(&donation)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Error(err)
		return nil, err
	}

	return &donation, nil
}

// AttachDonationOrder stores the gateway order id against a donation
func (m *MongoService) AttachDonationOrder(id string, orderID string) error {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	collection := m.db.Collection(m.DonationsCollection)
	_, err = collection.UpdateOne(context.Background(),
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"razorpay_order_id": orderID}})
	if err != nil {
		log.Error(err)
	}
	return err
}

// CompleteDonationResource transitions a donation from pending to completed.
// The status filter makes the transition conditional, so two racing
// completions cannot both match the pending record.
func (m *MongoService) CompleteDonationResource(id string, paymentID string, orderID string, signature string) (bool, error) {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	collection := m.db.Collection(m.DonationsCollection)
	res, err := collection.UpdateOne(context.Background(),
		bson.M{"_id": oid, "status": models.DonationStatusPending},
		bson.M{"$set": bson.M{
			"status":             models.DonationStatusCompleted,
			"payment_id":         paymentID,
			"razorpay_order_id":  orderID,
			"razorpay_signature": signature,
			"completed_at":       time.Now(),
		}})
	if err != nil {
		log.Error(err)
		return false, err
	}

	return res.MatchedCount == 1, nil
}

// BackfillDonationSignature stores a signature on a completed donation that
// was reconciled before the signature arrived
func (m *MongoService) BackfillDonationSignature(id string, signature string) error {

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	collection := m.db.Collection(m.DonationsCollection)
	_, err = collection.UpdateOne(context.Background(),
		bson.M{"_id": oid, "razorpay_signature": ""},
		bson.M{"$set": bson.M{"razorpay_signature": signature}})
	if err != nil {
		log.Error(err)
	}
	return err
}

// GetMemberByPaymentID fetches the member holding a payment id
func (m *MongoService) GetMemberByPaymentID(paymentID string) (*models.MemberResourceDao, error) {
	return m.findMember(bson.M{"payment_id": paymentID})
}

// GetMemberByEmail fetches a member by email
func (m *MongoService) GetMemberByEmail(email string) (*models.MemberResourceDao, error) {
	return m.findMember(bson.M{"email": email})
}

func (m *MongoService) findMember(filter bson.M) (*models.MemberResourceDao, error) {

	var member models.MemberResourceDao
	collection := m.db.Collection(m.MembersCollection)
	err := collection.FindOne(context.Background(), filter).Decode(&member)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		log.Error(err)
		return nil, err
	}

	return &member, nil
}

// MembershipIDExists reports whether a membership id is already in use
func (m *MongoService) MembershipIDExists(membershipID string) (bool, error) {

	collection := m.db.Collection(m.MembersCollection)
	count, err := collection.CountDocuments(context.Background(), bson.M{"membership_id": membershipID})
	if err != nil {
		log.Error(err)
		return false, err
	}

	return count > 0, nil
}

// UpsertMemberResource updates the member keyed by email, creating the record
// when absent. Credential and profile fields are only written when set, so an
// activation never blanks values it did not compute.
func (m *MongoService) UpsertMemberResource(member *models.MemberResourceDao) error {

	now := time.Now()

	set := bson.M{
		"membership_id":   member.MembershipID,
		"name":            member.Name,
		"phone":           member.Phone,
		"membership_type": member.MembershipType,
		"status":          member.Status,
		"expiry_date":     member.ExpiryDate,
		"payment_id":      member.PaymentID,
		"updated_at":      now,
	}

	for key, value := range map[string]string{
		"organization": member.Organization,
		"designation":  member.Designation,
		"experience":   member.Experience,
		"interests":    member.Interests,
		"address":      member.Address,
		"referral":     member.Referral,
		"password":     member.Password,
		"reset_token":  member.ResetToken,
	} {
		if value != "" {
			set[key] = value
		}
	}
	if !member.ResetTokenExpiry.IsZero() {
		set["reset_token_expiry"] = member.ResetTokenExpiry
	}

	collection := m.db.Collection(m.MembersCollection)
	_, err := collection.UpdateOne(context.Background(),
		bson.M{"email": member.Email},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"email": member.Email, "created_at": now},
		},
		options.Update().SetUpsert(true))

	// duplicate key errors are returned as-is for the caller's retry loop
	return err
}

// GetSetting fetches a settings value by key
func (m *MongoService) GetSetting(key string) (string, error) {

	var setting models.SettingResourceDao
	collection := m.db.Collection(m.SettingsCollection)
	err := collection.FindOne(context.Background(), bson.M{"key": key}).Decode(&setting)
	if err == mongo.ErrNoDocuments {
		return "", nil
	}
	if err != nil {
		log.Error(err)
		return "", err
	}

	return setting.Value, nil
}

// Shutdown is a hook that can be used to clean up db resources
func (m *MongoService) Shutdown() {
	if client != nil {
		err := client.Disconnect(context.Background())
		if err != nil {
			log.Error(err)
			return
		}
		log.Info("disconnected from mongodb successfully")
	}
}
