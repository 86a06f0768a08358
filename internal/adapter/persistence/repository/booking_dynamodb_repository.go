package repository

import (
	"context"
	"sort"

	"loki/internal/domain/entities"
	"loki/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type bookingItem struct {
	ID            string  `dynamodbav:"id"`
	HouseID       string  `dynamodbav:"house_id"`
	TenantID      string  `dynamodbav:"tenant_id"`
	OwnerID       string  `dynamodbav:"owner_id"`
	TenantName    string  `dynamodbav:"tenant_name"`
	TenantPhone   string  `dynamodbav:"tenant_phone"`
	StartDate     string  `dynamodbav:"start_date"`
	EndDate       string  `dynamodbav:"end_date"`
	MoveInDate    string  `dynamodbav:"move_in_date"`
	Status        string  `dynamodbav:"status"`
	CommissionFee *int64  `dynamodbav:"commission_fee,omitempty"`
	MonthlyRent   float64 `dynamodbav:"monthly_rent"`
	Notes         string  `dynamodbav:"notes,omitempty"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

type bookingDateItem struct {
	BookingID string `dynamodbav:"booking_id"`
	Date      string `dynamodbav:"date"`
}

// BookingDynamoRepository persists booking requests and their reservation
// dates. Each date is its own item in the dates table, written in the same
// transaction as the booking.
//
// Table requirements:
//   - bookings PK: id (string); GSIs tenant_id-index, owner_id-index
//   - booking dates PK: booking_id (string), SK: date (string)
type BookingDynamoRepository struct {
	ddb        DynamoDBAPI
	tableName  string
	datesTable string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb DynamoDBAPI, tableName, datesTable string) *BookingDynamoRepository {
	return &BookingDynamoRepository{ddb: ddb, tableName: tableName, datesTable: datesTable}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.BookingRequest{}, err
	}

	items := make([]types.TransactWriteItem, 0, len(b.ReservationDates)+1)
	items = append(items, types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	for _, d := range b.ReservationDates {
		dav, err := attributevalue.MarshalMap(bookingDateItem{BookingID: b.ID, Date: d})
		if err != nil {
			return entities.BookingRequest{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName: aws.String(r.datesTable),
				Item:      dav,
			},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		return entities.BookingRequest{}, mapConditionErr(err)
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingRequest{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingRequest{}, err
	}
	return r.withDates(ctx, fromBookingItem(it))
}

// List picks the tenant index, then the owner index, and scans when neither
// id is set.
func (r *BookingDynamoRepository) List(ctx context.Context, filter interfaces.BookingFilter) ([]entities.BookingRequest, error) {
	index, keyAttr, key := "", "", ""
	switch {
	case filter.TenantID != "":
		index, keyAttr, key = TenantIDIndex, "tenant_id", filter.TenantID
	case filter.OwnerID != "":
		index, keyAttr, key = OwnerIDIndex, "owner_id", filter.OwnerID
	}
	raw, err := selectItems(ctx, r.ddb, r.tableName, index, keyAttr, key, string(filter.Status))
	if err != nil {
		return nil, err
	}

	bookings := make([]entities.BookingRequest, 0, len(raw))
	for _, av := range raw {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		b := fromBookingItem(it)
		if filter.TenantID != "" && filter.OwnerID != "" && b.OwnerID != filter.OwnerID {
			continue
		}
		b, err = r.withDates(ctx, b)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	sort.SliceStable(bookings, func(i, j int) bool { return bookings[i].CreatedAt.After(bookings[j].CreatedAt) })
	return bookings, nil
}

func (r *BookingDynamoRepository) withDates(ctx context.Context, b entities.BookingRequest) (entities.BookingRequest, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.datesTable),
		KeyConditionExpression: aws.String("#booking_id = :booking_id"),
		ExpressionAttributeNames: map[string]string{
			"#booking_id": "booking_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":booking_id": &types.AttributeValueMemberS{Value: b.ID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingRequest{}, err
	}

	dates := make([]string, 0, len(raw))
	for _, av := range raw {
		var it bookingDateItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return entities.BookingRequest{}, err
		}
		dates = append(dates, it.Date)
	}
	sort.Strings(dates)
	b.ReservationDates = dates
	return b, nil
}

func toBookingItem(b entities.BookingRequest) bookingItem {
	return bookingItem{
		ID:            b.ID,
		HouseID:       b.HouseID,
		TenantID:      b.TenantID,
		OwnerID:       b.OwnerID,
		TenantName:    b.TenantName,
		TenantPhone:   b.TenantPhone,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		MoveInDate:    b.MoveInDate,
		Status:        string(b.Status),
		CommissionFee: b.CommissionFee,
		MonthlyRent:   b.MonthlyRent,
		Notes:         b.Notes,
		CreatedAt:     formatTime(b.CreatedAt),
	}
}

func fromBookingItem(it bookingItem) entities.BookingRequest {
	return entities.BookingRequest{
		ID:            it.ID,
		HouseID:       it.HouseID,
		TenantID:      it.TenantID,
		OwnerID:       it.OwnerID,
		TenantName:    it.TenantName,
		TenantPhone:   it.TenantPhone,
		StartDate:     it.StartDate,
		EndDate:       it.EndDate,
		MoveInDate:    it.MoveInDate,
		Status:        entities.BookingStatus(it.Status),
		CommissionFee: it.CommissionFee,
		MonthlyRent:   it.MonthlyRent,
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}
