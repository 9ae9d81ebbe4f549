package store

import "go.mongodb.org/mongo-driver/v2/bson"

// The booking↔policy join stages all hang off the same quirk: bookings keep
// the policy id as a hex string, so every pipeline casts it with $toObjectId
// before the $lookup. These builders are the one place that cast lives.

// resolvePolicyStages casts bookingPolicyId, inner-joins the policy document
// into policyInfo and drops bookings whose link does not resolve ($unwind
// without preserveNullAndEmptyArrays is the inner-join).
func resolvePolicyStages() []bson.D {
	return []bson.D{
		{{Key: "$addFields", Value: bson.M{
			"policyObjectId": bson.M{"$toObjectId": "$bookingPolicyId"},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "policies",
			"localField":   "policyObjectId",
			"foreignField": "_id",
			"as":           "policyInfo",
		}}},
		{{Key: "$unwind", Value: "$policyInfo"}},
	}
}

// topPoliciesPipeline groups bookings by resolved policy id, counts them,
// keeps the limit most booked and joins each to its policy summary. Order
// among policies with equal counts is whatever the server's sort yields.
func topPoliciesPipeline(limit int) []bson.D {
	return []bson.D{
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$toObjectId": "$bookingPolicyId"},
			"totalBookings": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalBookings", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "policies",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "policyInfo",
		}}},
		{{Key: "$unwind", Value: "$policyInfo"}},
		{{Key: "$project", Value: bson.M{
			"policyId":      "$_id",
			"totalBookings": 1,
			"name":          "$policyInfo.policyTitle",
			"category":      "$policyInfo.category",
			"image":         "$policyInfo.imageUrl",
			"premium":       "$policyInfo.basePremium",
			"coverageRange": "$policyInfo.coverageRange",
		}}},
	}
}

// bookingsWithPolicyPipeline joins bookings to policies, optionally filtered
// first. Pass a nil match for the full listing.
func bookingsWithPolicyPipeline(match bson.M) []bson.D {
	pipeline := make([]bson.D, 0, 4)
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	return append(pipeline, resolvePolicyStages()...)
}

// claimableBookingsPipeline keeps a user's bookings whose status lower-cases
// to "active", joins the policy and projects the claim-eligibility shape.
func claimableBookingsPipeline(email string) []bson.D {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.M{
			"userEmail": email,
			"$expr":     bson.M{"$eq": bson.A{bson.M{"$toLower": "$status"}, "active"}},
		}}},
	}
	pipeline = append(pipeline, resolvePolicyStages()...)
	return append(pipeline, bson.D{{Key: "$project", Value: bson.M{
		"bookingPolicyId": 1,
		"userEmail":       1,
		"status":          1,
		"policyTitle":     "$policyInfo.policyTitle",
		"basePremium":     "$policyInfo.basePremium",
		"imageUrl":        "$policyInfo.imageUrl",
	}}})
}
