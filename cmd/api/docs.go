package main

// @title Explore Places API
// @version 1.0
// @description Travel-information API aggregating weather, encyclopedic summaries, nearby points of interest and travel directions for a place.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
