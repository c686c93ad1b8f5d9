package main

import (
	"log"
	"os"

	"github.com/YeyeJames/jiale15/Controllers"
	"github.com/YeyeJames/jiale15/CronJobs"
	"github.com/YeyeJames/jiale15/Models"
	"github.com/YeyeJames/jiale15/Routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	db, err := Models.ConnectDataBase()
	if err != nil {
		log.Fatal("connection error:", err)
	}
	store := Models.NewStore(db)

	ctrl := Controllers.New(store)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))
	Routes.ConfigRoutes(router, ctrl, store)

	summaryService := CronJobs.NewDayCloseSummary(store)
	scheduler := summaryService.StartSummaryCron()
	_ = scheduler

	port := os.Getenv("PORT")
	if port == "" {
		port = "3005"
	}
	router.Run(":" + port)
}
