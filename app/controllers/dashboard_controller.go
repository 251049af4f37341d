package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/filaleve/filaleve-web/internal/pkg/cache"
	"github.com/filaleve/filaleve-web/internal/pkg/session"
	"github.com/filaleve/filaleve-web/internal/pkg/upstream"
	"github.com/filaleve/filaleve-web/internal/pkg/usercontext"
	"github.com/filaleve/filaleve-web/internal/pkg/viewmodel"
)

// mutationLatchTTL bounds how long a subscribe/toggle submission blocks
// a duplicate one while the first is still outstanding.
const mutationLatchTTL = 30 * time.Second

// HandleDashboard issues the one aggregate organization fetch per visit
// and renders the resulting view models. Nothing is cached between
// visits; a reload is always a fresh fetch.
func HandleDashboard(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)

	if !uc.User.HasOrganization() {
		return c.Render("dashboard", renderData(c, "dashboard", fiber.Map{
			"Error": "Falha ao carregar dados: CNPJ da organização não encontrado",
		}), "layouts/main")
	}

	agg, err := authService.Client().GetOrganization(c.Context(), uc.Credential, uc.User.OrganizationCNPJ())
	if err != nil {
		if errors.Is(err, upstream.ErrAuthentication) {
			_ = session.Destroy(c)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		message := "Falha ao carregar dados: " + upstream.ErrorMessage(err)
		var ve *upstream.ValidationError
		if errors.As(err, &ve) {
			message = "Erro ao validar CNPJ: " + ve.Message
		}
		return c.Render("dashboard", renderData(c, "dashboard", fiber.Map{
			"Error": message,
		}), "layouts/main")
	}

	dash := viewmodel.BuildDashboard(agg)
	return c.Render("dashboard", renderData(c, "dashboard", fiber.Map{
		"Organization":  dash.Organization,
		"Subscription":  dash.Subscription,
		"Payments":      dash.Payments,
		"OrgName":       dash.Organization.Name,
		"HasCustomerID": uc.User.CustomerID() != "",
	}), "layouts/main")
}

// HandleSubscribe creates a subscription at the billing gateway and
// reloads the dashboard. No incremental merge: a successful mutation is
// followed by a full fresh fetch.
func HandleSubscribe(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	fm := fiber.Map{"type": "error"}

	customer := uc.User.CustomerID()
	if customer == "" {
		fm["message"] = "Erro: cliente de cobrança não encontrado para a organização"
		return flash.WithError(c, fm).Redirect("/dashboard")
	}

	release, ok := acquireMutationLatch(uc.Credential, "subscribe")
	if !ok {
		fm["message"] = "A assinatura já está sendo processada."
		return flash.WithError(c, fm).Redirect("/dashboard")
	}
	defer release()

	if _, err := authService.Client().CreateSubscription(c.Context(), uc.Credential, customer); err != nil {
		if errors.Is(err, upstream.ErrAuthentication) {
			_ = session.Destroy(c)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		fm["message"] = "Erro: " + upstream.ErrorMessage(err)
		return flash.WithError(c, fm).Redirect("/dashboard")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Assinatura criada com sucesso!",
	}
	return flash.WithSuccess(c, fm).Redirect("/dashboard")
}

// HandleSubscriptionToggle flips the subscription between ACTIVE and
// INACTIVE, then reloads the dashboard.
func HandleSubscriptionToggle(c *fiber.Ctx) error {
	uc := usercontext.GetUserContext(c)
	fm := fiber.Map{"type": "error"}

	subscriptionID := c.FormValue("subscription_id")
	newStatus := c.FormValue("new_status")
	if subscriptionID == "" || newStatus == "" {
		fm["message"] = "Erro: assinatura inválida"
		return flash.WithError(c, fm).Redirect("/dashboard")
	}

	release, ok := acquireMutationLatch(uc.Credential, "toggle")
	if !ok {
		fm["message"] = "A alteração já está sendo processada."
		return flash.WithError(c, fm).Redirect("/dashboard")
	}
	defer release()

	if err := authService.Client().UpdateSubscriptionStatus(c.Context(), uc.Credential, subscriptionID, newStatus); err != nil {
		if errors.Is(err, upstream.ErrAuthentication) {
			_ = session.Destroy(c)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		fm["message"] = "Erro: " + upstream.ErrorMessage(err)
		return flash.WithError(c, fm).Redirect("/dashboard")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Status da assinatura atualizado!",
	}
	return flash.WithSuccess(c, fm).Redirect("/dashboard")
}

// acquireMutationLatch suppresses duplicate submissions of the same
// mutation while one is outstanding for this session. Fails open when
// Redis is unreachable: a duplicate call is less harmful than a dead
// button.
func acquireMutationLatch(credential, action string) (func(), bool) {
	key := "billing:latch:" + action + ":" + credential
	ok, err := cache.SetNX(key, "1", mutationLatchTTL)
	if err != nil {
		log.Printf("mutation latch unavailable, proceeding: %v", err)
		return func() {}, true
	}
	if !ok {
		return nil, false
	}
	return func() {
		if err := cache.Delete(key); err != nil {
			log.Printf("mutation latch release failed: %v", err)
		}
	}, true
}
