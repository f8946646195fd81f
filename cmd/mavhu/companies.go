package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mavhu/models"
	"mavhu/portal"
)

func companiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage portal companies",
	}
	cmd.AddCommand(companiesListCmd(), companiesGetCmd(), companiesCreateCmd(), companiesUpdateCmd(), companiesDeleteCmd())
	return cmd
}

func companiesListCmd() *cobra.Command {
	var page, limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.ListCompanies(cmd.Context(), page, limit)
			if err != nil {
				return err
			}
			th := resolveTheme(darkUI)
			fmt.Println(th.Header.Render(fmt.Sprintf("Companies (page %d/%d, %d total)", res.Page, res.TotalPages, res.Total)))
			for _, c := range res.Companies {
				fmt.Printf("%s  %s  %s\n",
					th.Value.Render(c.ID.Hex()),
					th.Title.Render(c.Name),
					th.Muted.Render(string(c.ESGStatus)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 20, "page size")
	return cmd
}

func companiesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := client.GetCompany(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printCompany(*c)
			return nil
		},
	}
}

func companyFlags(cmd *cobra.Command, in *portal.CompanyInput, aoi *string) {
	cmd.Flags().StringVar(&in.Name, "name", "", "company name")
	cmd.Flags().StringVar(&in.RegistrationNumber, "registration", "", "registration number")
	cmd.Flags().StringVar(&in.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&in.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&in.ContactPerson, "contact", "", "contact person")
	cmd.Flags().StringVar(&in.Industry, "industry", "", "industry")
	cmd.Flags().StringVar(&in.Country, "country", "", "country")
	cmd.Flags().StringVar(aoi, "area", "", `area of interest as "Name:lat,lon[;lat,lon...]"`)
}

// parseArea parses "Name:lat,lon;lat,lon" into an area of interest.
func parseArea(s string) (*models.AreaOfInterest, error) {
	if s == "" {
		return nil, nil
	}
	name, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("area must look like Name:lat,lon[;lat,lon...]")
	}
	aoi := &models.AreaOfInterest{Name: name}
	for _, pair := range strings.Split(rest, ";") {
		var lat, lon float64
		if _, err := fmt.Sscanf(strings.TrimSpace(pair), "%f,%f", &lat, &lon); err != nil {
			return nil, fmt.Errorf("bad coordinate %q", pair)
		}
		aoi.Coordinates = append(aoi.Coordinates, models.Coordinate{Lat: lat, Lon: lon})
	}
	return aoi, nil
}

func companiesCreateCmd() *cobra.Command {
	var in portal.CompanyInput
	var area string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new company",
		RunE: func(cmd *cobra.Command, args []string) error {
			aoi, err := parseArea(area)
			if err != nil {
				return err
			}
			in.AreaOfInterest = aoi
			c, err := client.CreateCompany(cmd.Context(), in)
			if err != nil {
				return err
			}
			printCompany(*c)
			return nil
		},
	}
	companyFlags(cmd, &in, &area)
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("registration")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("phone")
	return cmd
}

func companiesUpdateCmd() *cobra.Command {
	var in portal.CompanyInput
	var area string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update company fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aoi, err := parseArea(area)
			if err != nil {
				return err
			}
			in.AreaOfInterest = aoi
			c, err := client.UpdateCompany(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			printCompany(*c)
			return nil
		},
	}
	companyFlags(cmd, &in, &area)
	return cmd
}

func companiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a company and its reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteCompany(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}

func printCompany(c models.Company) {
	th := resolveTheme(darkUI)
	rows := []string{
		th.Title.Render(c.Name),
		th.Label.Render("id          ") + th.Value.Render(c.ID.Hex()),
		th.Label.Render("registration") + " " + th.Value.Render(c.RegistrationNumber),
		th.Label.Render("email       ") + th.Value.Render(c.Email),
		th.Label.Render("phone       ") + th.Value.Render(c.Phone),
		th.Label.Render("industry    ") + th.Value.Render(c.Industry),
		th.Label.Render("country     ") + th.Value.Render(c.Country),
		th.Label.Render("esg status  ") + th.Value.Render(string(c.ESGStatus)),
	}
	if c.AreaOfInterest != nil {
		rows = append(rows, th.Label.Render("area        ")+th.Value.Render(
			fmt.Sprintf("%s (%d coordinates)", c.AreaOfInterest.Name, len(c.AreaOfInterest.Coordinates))))
	}
	fmt.Println(th.Card.Render(strings.Join(rows, "\n")))
}
