package main

import "github.com/voxnote/study-api/cmd"

// @title           VoxNote Study API
// @version         1.0.0
// @description     An audio transcription and study artifact API
// @contact.name    API Support
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token from the identity provider
func main() {
	cmd.Execute()
}
