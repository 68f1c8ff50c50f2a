// Package docs Donor Matching Service API.
//
// Подбор ближайших доноров крови, банков крови и поставщиков кислорода
// по координатам искателя.
//
// Основные возможности:
// - Поиск доступных доноров нужной группы вместе с банками крови
// - Поиск поставщиков кислорода по удалённости
// - Каталог банков крови и проверка наличия по группе
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
