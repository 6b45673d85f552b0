// Package docs Trip Aggregator API.
//
// Сервис расчёта поездок: по двум адресам возвращает координаты, маршрут, время в пути,
// ориентировочный тариф в PHP и сведения о пункте назначения (погода, новости, места рядом).
//
// Основные возможности:
// - Расчёт поездки и тарифа для jeepney, автобуса, такси и частной машины
// - Резервный источник маршрута (directions геокодера) при сбое TomTom
// - Прямые запросы к геокодеру, погоде, новостям и местам
// - CRUD сохранённых расчётов тарифа
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
