package crud

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "artspace_backend/internals/helpers"
)

// Controller exposes the generic endpoint set over a ServiceAPI:
//
//	GET    /:id          200
//	GET    /             200 (paginated, ?page&size&sort_by&order)
//	GET    /getAll       200 (full list)
//	POST   /add          201
//	PUT    /update?id=   202
//	DELETE /delete/:id   200
//
// Per-entity controllers embed it and register their search endpoints before
// RegisterReads so "/:id" cannot shadow them.
type Controller[D any] struct {
	Service  ServiceAPI[D]
	Validate *validator.Validate
	PageOpts helper.Options
}

func NewController[D any](svc ServiceAPI[D]) Controller[D] {
	return Controller[D]{
		Service:  svc,
		Validate: validator.New(),
		PageOpts: helper.DefaultOpts,
	}
}

func (ct *Controller[D]) RegisterReads(r fiber.Router) {
	r.Get("/getAll", ct.GetAll)
	r.Get("/", ct.GetPage)
	r.Get("/:id<int>", ct.GetOne)
}

func (ct *Controller[D]) RegisterWrites(r fiber.Router) {
	r.Post("/add", ct.Create)
	r.Put("/update", ct.Update)
	r.Delete("/delete/:id<int>", ct.Delete)
}

func (ct *Controller[D]) GetOne(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	dto, err := ct.Service.GetOne(c.UserContext(), uint(id))
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.JSON(dto)
}

func (ct *Controller[D]) GetAll(c *fiber.Ctx) error {
	list, err := ct.Service.ListAll(c.UserContext())
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.JSON(list)
}

func (ct *Controller[D]) GetPage(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "", "asc", ct.PageOpts)
	list, meta, err := ct.Service.ListPage(c.UserContext(), p)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return helper.JsonList(c, list, meta)
}

func (ct *Controller[D]) Create(c *fiber.Ctx) error {
	var body D
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ct.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	created, err := ct.Service.Create(c.UserContext(), &body)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (ct *Controller[D]) Update(c *fiber.Ctx) error {
	var body D
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ct.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	// ?id= wins over any id in the body.
	if id := c.QueryInt("id"); id > 0 {
		setDTOID(&body, uint(id))
	}
	updated, err := ct.Service.Update(c.UserContext(), &body)
	if err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(updated)
}

func (ct *Controller[D]) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid id")
	}
	if err := ct.Service.Delete(c.UserContext(), uint(id)); err != nil {
		return helper.JsonServiceError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}

func setDTOID[D any](d *D, id uint) {
	if s, ok := any(d).(interface{ SetID(uint) }); ok {
		s.SetID(id)
	}
}
