package models

type FollowEdgeModel struct {
	EdgeId     string `bson:"_id"`
	FollowerId string `bson:"followerId"`
	FolloweeId string `bson:"followeeId"`
	CreatedOn  int64  `bson:"createdOn"`
}

func (e *FollowEdgeModel) Id() string {
	return GetFollowEdgeId(e.FollowerId, e.FolloweeId)
}

// returns the follow edge id for the given follower and followee
func GetFollowEdgeId(followerId, followeeId string) string {
	return followerId + "/" + followeeId
}
