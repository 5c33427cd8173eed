package controllers

import (
	"net/http"
	"strconv"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"github.com/gin-gonic/gin"
)

func FollowFriend(c *gin.Context) {
	uid := c.GetUint("userID")
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	friendSvc := services.NewFriendService(config.DB)
	if err := friendSvc.Follow(uid, uint(friendID)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	refreshProgress(uid, false)
	c.JSON(http.StatusOK, gin.H{"message": "following"})
}

func UnfollowFriend(c *gin.Context) {
	uid := c.GetUint("userID")
	friendID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	friendSvc := services.NewFriendService(config.DB)
	if err := friendSvc.Unfollow(uid, uint(friendID)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func ListFriends(c *gin.Context) {
	uid := c.GetUint("userID")

	friendSvc := services.NewFriendService(config.DB)
	friends, err := friendSvc.ListFriends(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, friends)
}
