package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonflow/models"
)

// blockingStatuses matches appointments that still occupy staff time.
var blockingStatuses = bson.M{"$nin": bson.A{models.AppointmentCancelled, models.AppointmentNoShow}}

func dayBounds(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, day.AddDate(0, 0, 1), nil
}

func (r *mongoAppointmentRepo) ListBlockingByStaffAndDate(ctx context.Context, staffID, date string) ([]models.Appointment, error) {
	dayStart, dayEnd, err := dayBounds(date)
	if err != nil {
		return nil, err
	}
	return r.findBlocking(ctx, staffID, dayStart, dayEnd)
}

func (r *mongoAppointmentRepo) ListBlockingByStaffAndDateRange(ctx context.Context, staffID, startDate, endDate string) ([]models.Appointment, error) {
	rangeStart, _, err := dayBounds(startDate)
	if err != nil {
		return nil, err
	}
	_, rangeEnd, err := dayBounds(endDate)
	if err != nil {
		return nil, err
	}
	return r.findBlocking(ctx, staffID, rangeStart, rangeEnd)
}

func (r *mongoAppointmentRepo) findBlocking(ctx context.Context, staffID string, from, to time.Time) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staffId": staffID,
		"status":  blockingStatuses,
		"date":    bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) FindOverlapping(ctx context.Context, staffID string, start, end time.Time, excludeID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"staffId": staffID,
		"status":  blockingStatuses,
		"date":    bson.M{"$lt": end},
		"endTime": bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) CountBlockingOnDate(ctx context.Context, staffID, date string) (int64, error) {
	dayStart, dayEnd, err := dayBounds(date)
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.coll.CountDocuments(ctx, bson.M{
		"staffId": staffID,
		"status":  blockingStatuses,
		"date":    bson.M{"$gte": dayStart, "$lt": dayEnd},
	})
}

func (r *mongoAppointmentRepo) ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}
