// @title           Admin Panel API
// @version         1.0
// @description     API админ-панели: организации, тарифы, платежи, сотрудники и выплаты.
// @contact.name    Support
// @contact.email   support@company.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8000
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "adminpanel_backend/internal/app"

func main() {
	app.Run()
}
